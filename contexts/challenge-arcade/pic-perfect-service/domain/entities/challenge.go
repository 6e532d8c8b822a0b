package entities

import (
	"strings"
	"time"
)

// DefaultChallengeID identifies the standing Pic Perfect challenge when the
// deployment does not override it through configuration.
const DefaultChallengeID = "pic-perfect"

type ChallengeState string

const (
	StateLocked     ChallengeState = "locked"
	StateSubmission ChallengeState = "submission"
	StateVoting     ChallengeState = "voting"
	StateScoring    ChallengeState = "scoring"
	StateComplete   ChallengeState = "complete"
)

// ParseChallengeState maps free-form input onto the closed state set.
func ParseChallengeState(raw string) (ChallengeState, bool) {
	switch ChallengeState(strings.ToLower(strings.TrimSpace(raw))) {
	case StateLocked:
		return StateLocked, true
	case StateSubmission:
		return StateSubmission, true
	case StateVoting:
		return StateVoting, true
	case StateScoring:
		return StateScoring, true
	case StateComplete:
		return StateComplete, true
	default:
		return "", false
	}
}

// TransitionGuard tags the predicate a transition additionally requires.
// Guards read ledger coverage, so the application layer evaluates them.
type TransitionGuard string

const (
	GuardNone              TransitionGuard = ""
	GuardAllTeamsSubmitted TransitionGuard = "all_teams_submitted"
	GuardAllVotesCast      TransitionGuard = "all_votes_cast"
)

type transitionKey struct {
	from ChallengeState
	to   ChallengeState
}

// transitionTable is the exhaustive set of legal phase changes. Anything
// absent from this table is rejected. Locked is reachable from every state.
var transitionTable = map[transitionKey]TransitionGuard{
	{StateLocked, StateSubmission}:  GuardNone,
	{StateSubmission, StateVoting}:  GuardAllTeamsSubmitted,
	{StateSubmission, StateLocked}:  GuardNone,
	{StateVoting, StateScoring}:     GuardAllVotesCast,
	{StateVoting, StateLocked}:      GuardNone,
	{StateScoring, StateComplete}:   GuardNone,
	{StateScoring, StateLocked}:     GuardNone,
	{StateComplete, StateLocked}:    GuardNone,
}

// TransitionSpec reports the guard attached to (from, to) and whether that
// pair is a legal transition at all.
func TransitionSpec(from ChallengeState, to ChallengeState) (TransitionGuard, bool) {
	guard, ok := transitionTable[transitionKey{from: from, to: to}]
	return guard, ok
}

// ChallengeMetadata tracks hidden-image bookkeeping owned by the state
// machine. Revealed stays false until finalize.
type ChallengeMetadata struct {
	HiddenImageSet      bool
	HiddenImageRevealed bool
}

type Challenge struct {
	ChallengeID string
	State       ChallengeState
	StartTime   time.Time
	EndTime     *time.Time
	Metadata    ChallengeMetadata
	Config      map[string]any
	UpdatedAt   time.Time
}
