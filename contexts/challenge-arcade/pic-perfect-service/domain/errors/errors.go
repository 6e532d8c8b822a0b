package errors

import "errors"

var (
	ErrChallengeNotInitialized   = errors.New("challenge is not initialized")
	ErrInvalidState              = errors.New("operation is not allowed in the current challenge state")
	ErrInvalidTransition         = errors.New("challenge state transition is not allowed")
	ErrDuplicateSubmission       = errors.New("team has already submitted an image")
	ErrDuplicateHiddenSubmission = errors.New("hidden image has already been submitted")
	ErrSelfVote                  = errors.New("teams cannot vote for their own image")
	ErrDuplicateVote             = errors.New("vote batch includes an already-voted team")
	ErrVoteLimitExceeded         = errors.New("vote limit exceeded")
	ErrUnknownVoteTarget         = errors.New("vote target has no submission")
	ErrTeamNotRegistered         = errors.New("team is not registered for the challenge")
	ErrScoreNotFound             = errors.New("no leaderboard entry for team")
	ErrInvalidRequest            = errors.New("invalid request input")
	ErrConflict                  = errors.New("record conflict")
	ErrIdempotencyKeyRequired    = errors.New("idempotency key is required")
	ErrIdempotencyConflict       = errors.New("idempotency key conflict")
)
