package httpadapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strings"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/application/commands"
	"arcade/contexts/challenge-arcade/pic-perfect-service/application/queries"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	httptransport "arcade/contexts/challenge-arcade/pic-perfect-service/transport/http"
)

type Handler struct {
	StartChallenge    commands.StartChallengeUseCase
	SubmitHiddenImage commands.SubmitHiddenImageUseCase
	SubmitImage       commands.SubmitImageUseCase
	CastVotes         commands.CastVotesUseCase
	TransitionState   commands.TransitionStateUseCase
	CalculateScores   commands.CalculateScoresUseCase
	FinalizeChallenge commands.FinalizeChallengeUseCase
	ResetChallenge    commands.ResetChallengeUseCase
	ChallengeStatus   queries.ChallengeStatusUseCase
	SubmissionStatus  queries.SubmissionStatusUseCase
	VotingStatus      queries.VotingStatusUseCase
	TeamStatus        queries.TeamStatusUseCase
	LedgerReads       queries.LedgerReadsUseCase
	VotingPool        queries.VotingPoolUseCase
	Leaderboard       queries.LeaderboardUseCase
	Logger            *slog.Logger
}

// StartChallengeHandler godoc
// @Summary Start the Pic Perfect challenge
// @Description Creates the challenge record if absent and opens the submission window. A hidden image supplied in the body is forwarded to the ledger in the same call.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Param request body httptransport.StartChallengeRequest true "Hidden image payload and config overrides"
// @Success 200 {object} httptransport.StartChallengeResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/start [post]
func (h Handler) StartChallengeHandler(ctx context.Context, req httptransport.StartChallengeRequest) (httptransport.StartChallengeResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("start challenge request received",
		"event", "http_start_challenge_received",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "transport",
	)

	result, err := h.StartChallenge.Execute(ctx, commands.StartChallengeCommand{
		ImageURL: req.HiddenImageURL,
		Prompt:   req.HiddenPrompt,
		Config:   req.Config,
	})
	if err != nil {
		logger.Error("start challenge request failed",
			"event", "http_start_challenge_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.StartChallengeResponse{}, err
	}

	return httptransport.StartChallengeResponse{
		ChallengeID: result.Challenge.ChallengeID,
		State:       string(result.Challenge.State),
		StartTime:   result.Challenge.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
		HiddenImage: httptransport.HiddenImageOutcomeDTO{
			Accepted: result.HiddenImage.Accepted,
			Detail:   result.HiddenImage.Detail,
		},
	}, nil
}

// SubmitHiddenImageHandler godoc
// @Summary Submit the hidden ringer image
// @Description Stores the concealed admin submission that teams try to identify during voting.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Param request body httptransport.SubmitHiddenImageRequest true "Hidden image payload"
// @Success 200 {object} httptransport.SubmitHiddenImageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/hidden-image [post]
func (h Handler) SubmitHiddenImageHandler(ctx context.Context, req httptransport.SubmitHiddenImageRequest) (httptransport.SubmitHiddenImageResponse, error) {
	result, err := h.SubmitHiddenImage.Execute(ctx, commands.SubmitHiddenImageCommand{
		ImageURL: req.ImageURL,
		Prompt:   req.Prompt,
	})
	if err != nil {
		return httptransport.SubmitHiddenImageResponse{}, err
	}
	return httptransport.SubmitHiddenImageResponse{
		ChallengeID:    result.Submission.ChallengeID,
		HiddenImageSet: true,
	}, nil
}

// TransitionStateHandler godoc
// @Summary Transition the challenge state
// @Description Moves the challenge to the named target state when the transition table and its guard allow it.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Param request body httptransport.TransitionStateRequest true "Target state"
// @Success 200 {object} httptransport.TransitionStateResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/transition [post]
func (h Handler) TransitionStateHandler(ctx context.Context, req httptransport.TransitionStateRequest) (httptransport.TransitionStateResponse, error) {
	result, err := h.TransitionState.Execute(ctx, commands.TransitionStateCommand{TargetState: req.TargetState})
	if err != nil {
		return httptransport.TransitionStateResponse{}, err
	}
	return httptransport.TransitionStateResponse{
		ChallengeID:   result.ChallengeID,
		PreviousState: string(result.PreviousState),
		CurrentState:  string(result.CurrentState),
	}, nil
}

// CalculateScoresHandler godoc
// @Summary Calculate and persist scores
// @Description Scores every visible submission from the vote ledger and rewrites the leaderboard. Safe to repeat.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.CalculateScoresResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/calculate-scores [post]
func (h Handler) CalculateScoresHandler(ctx context.Context) (httptransport.CalculateScoresResponse, error) {
	result, err := h.CalculateScores.Execute(ctx)
	if err != nil {
		return httptransport.CalculateScoresResponse{}, err
	}
	return httptransport.CalculateScoresResponse{
		ChallengeID: result.ChallengeID,
		Items:       mapLeaderboardRows(result.Rows, true),
	}, nil
}

// FinalizeChallengeHandler godoc
// @Summary Finalize the challenge
// @Description Runs a last scoring pass, reveals the hidden image, and completes the challenge. A scoring failure is reported in the body while the completion still goes through.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.FinalizeChallengeResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/finalize [post]
func (h Handler) FinalizeChallengeHandler(ctx context.Context) (httptransport.FinalizeChallengeResponse, error) {
	result, err := h.FinalizeChallenge.Execute(ctx)
	if err != nil {
		return httptransport.FinalizeChallengeResponse{}, err
	}
	return httptransport.FinalizeChallengeResponse{
		ChallengeID:   result.ChallengeID,
		PreviousState: string(result.PreviousState),
		CurrentState:  string(result.CurrentState),
		EndTime:       result.EndTime.UTC().Format("2006-01-02T15:04:05Z"),
		Items:         mapLeaderboardRows(result.Rows, true),
		ScoringError:  result.ScoringError,
	}, nil
}

// ResetChallengeHandler godoc
// @Summary Reset the challenge
// @Description Clears the challenge record, all submissions, every vote, and the leaderboard.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.ResetChallengeResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/reset [post]
func (h Handler) ResetChallengeHandler(ctx context.Context) (httptransport.ResetChallengeResponse, error) {
	result, err := h.ResetChallenge.Execute(ctx)
	if err != nil {
		return httptransport.ResetChallengeResponse{}, err
	}
	return httptransport.ResetChallengeResponse{
		ChallengeID: result.ChallengeID,
		Cleared:     result.Cleared,
	}, nil
}

// ChallengeStatusHandler godoc
// @Summary Challenge overview
// @Description Returns the current phase, census counts, and both transition guard previews.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.ChallengeStatusResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/status [get]
func (h Handler) ChallengeStatusHandler(ctx context.Context) (httptransport.ChallengeStatusResponse, error) {
	result, err := h.ChallengeStatus.Execute(ctx)
	if err != nil {
		return httptransport.ChallengeStatusResponse{}, err
	}
	resp := httptransport.ChallengeStatusResponse{
		ChallengeID:            result.ChallengeID,
		State:                  string(result.State),
		HiddenImageSet:         result.HiddenImageSet,
		HiddenImageRevealed:    result.HiddenImageRevealed,
		RegisteredTeams:        result.RegisteredTeams,
		SubmittedTeams:         result.SubmittedTeams,
		CanTransitionToVoting:  result.CanTransitionToVoting,
		CanTransitionToScoring: result.CanTransitionToScoring,
	}
	if !result.StartTime.IsZero() {
		resp.StartTime = result.StartTime.UTC().Format("2006-01-02T15:04:05Z")
	}
	if result.EndTime != nil {
		resp.EndTime = result.EndTime.UTC().Format("2006-01-02T15:04:05Z")
	}
	return resp, nil
}

// SubmissionStatusHandler godoc
// @Summary Submission coverage
// @Description Lists which registered teams have submitted, who is pending, and whether voting may open.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.SubmissionStatusResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/submission-status [get]
func (h Handler) SubmissionStatusHandler(ctx context.Context) (httptransport.SubmissionStatusResponse, error) {
	result, err := h.SubmissionStatus.Execute(ctx)
	if err != nil {
		return httptransport.SubmissionStatusResponse{}, err
	}
	return httptransport.SubmissionStatusResponse{
		ChallengeID:           result.ChallengeID,
		State:                 string(result.State),
		RegisteredTeams:       result.RegisteredTeams,
		SubmittedTeams:        result.SubmittedTeams,
		PendingTeams:          result.PendingTeams,
		HiddenImageSet:        result.HiddenImageSet,
		CanTransitionToVoting: result.CanTransitionToVoting,
	}, nil
}

// VotingStatusHandler godoc
// @Summary Voting progress
// @Description Reports per-team vote budget usage and whether scoring may begin.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param X-Admin-Id header string true "Admin identity"
// @Success 200 {object} httptransport.VotingStatusResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /admin/pic-perfect/voting-status [get]
func (h Handler) VotingStatusHandler(ctx context.Context) (httptransport.VotingStatusResponse, error) {
	result, err := h.VotingStatus.Execute(ctx)
	if err != nil {
		return httptransport.VotingStatusResponse{}, err
	}
	progress := make([]httptransport.TeamVoteProgressDTO, 0, len(result.Progress))
	for _, team := range result.Progress {
		progress = append(progress, httptransport.TeamVoteProgressDTO{
			TeamName:       team.TeamName,
			VotesUsed:      team.VotesUsed,
			VotesRemaining: team.VotesRemaining,
		})
	}
	return httptransport.VotingStatusResponse{
		ChallengeID:            result.ChallengeID,
		State:                  string(result.State),
		Progress:               progress,
		AllVotesCast:           result.AllVotesCast,
		CanTransitionToScoring: result.CanTransitionToScoring,
	}, nil
}

// SubmitImageHandler godoc
// @Summary Submit a team image
// @Description Records the calling team's single gallery entry for the challenge.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body httptransport.SubmitImageRequest true "Submission payload"
// @Success 200 {object} httptransport.SubmitImageResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/images [post]
func (h Handler) SubmitImageHandler(
	ctx context.Context,
	teamName string,
	idempotencyKey string,
	req httptransport.SubmitImageRequest,
) (httptransport.SubmitImageResponse, error) {
	result, err := h.SubmitImage.Execute(ctx, commands.SubmitImageCommand{
		TeamName:       teamName,
		ImageURL:       req.ImageURL,
		Prompt:         req.Prompt,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.SubmitImageResponse{}, err
	}
	return httptransport.SubmitImageResponse{
		Submission: mapSubmission(result.Submission),
		Replayed:   result.Replayed,
	}, nil
}

// CastVotesHandler godoc
// @Summary Cast a vote batch
// @Description Validates and records the calling team's ballot. Targets are pool entry keys; the whole batch is rejected on the first invalid target.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body httptransport.CastVotesRequest true "Ballot payload"
// @Success 200 {object} httptransport.CastVotesResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/votes [post]
func (h Handler) CastVotesHandler(
	ctx context.Context,
	teamName string,
	idempotencyKey string,
	req httptransport.CastVotesRequest,
) (httptransport.CastVotesResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("cast votes request received",
		"event", "http_cast_votes_received",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "transport",
		"target_count", len(req.Targets),
	)

	keyToName, nameToKey, err := h.poolIndex(ctx)
	if err != nil {
		return httptransport.CastVotesResponse{}, err
	}

	// Ballot targets arrive as pool entry keys. Values that resolve to no
	// known key pass through untouched and fail ledger validation instead.
	targets := make([]string, 0, len(req.Targets))
	for _, target := range req.Targets {
		if name, ok := keyToName[target]; ok {
			targets = append(targets, name)
			continue
		}
		targets = append(targets, target)
	}

	result, err := h.CastVotes.Execute(ctx, commands.CastVotesCommand{
		VoterTeam:      teamName,
		Targets:        targets,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		logger.Error("cast votes request failed",
			"event", "http_cast_votes_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.CastVotesResponse{}, err
	}

	accepted := make([]string, 0, len(result.AcceptedTargets))
	for _, name := range result.AcceptedTargets {
		if key, ok := nameToKey[name]; ok {
			accepted = append(accepted, key)
			continue
		}
		accepted = append(accepted, name)
	}

	return httptransport.CastVotesResponse{
		ReceiptID:       result.ReceiptID,
		AcceptedTargets: accepted,
		VotesRemaining:  result.VotesRemaining,
		Replayed:        result.Replayed,
	}, nil
}

// VotingPoolHandler godoc
// @Summary Anonymized voting pool
// @Description Returns every gallery entry except the caller's own, identified only by entry key. The hidden ringer is mixed in.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Success 200 {object} httptransport.VotingPoolResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/voting-pool [get]
func (h Handler) VotingPoolHandler(ctx context.Context, teamName string) (httptransport.VotingPoolResponse, error) {
	pool, err := h.VotingPool.Execute(ctx, teamName)
	if err != nil {
		return httptransport.VotingPoolResponse{}, err
	}
	items := make([]httptransport.PoolEntryDTO, 0, len(pool))
	for _, sub := range pool {
		items = append(items, httptransport.PoolEntryDTO{
			EntryKey: entryKey(sub.ChallengeID, sub.TeamName),
			ImageURL: sub.ImageURL,
			Prompt:   sub.Prompt,
		})
	}
	// Listing order follows the scrambled key, never the team name, so
	// position cannot hint at identity.
	sort.Slice(items, func(i, j int) bool { return items[i].EntryKey < items[j].EntryKey })
	return httptransport.VotingPoolResponse{Items: items}, nil
}

// TeamStatusHandler godoc
// @Summary Own team status
// @Description Returns the calling team's submission, vote usage, and score row if one exists.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Success 200 {object} httptransport.TeamStatusResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/team-status [get]
func (h Handler) TeamStatusHandler(ctx context.Context, teamName string) (httptransport.TeamStatusResponse, error) {
	result, err := h.TeamStatus.Execute(ctx, teamName)
	if err != nil {
		return httptransport.TeamStatusResponse{}, err
	}

	given := make([]string, 0, len(result.VotesGiven))
	for _, name := range result.VotesGiven {
		given = append(given, entryKey(result.ChallengeID, name))
	}

	resp := httptransport.TeamStatusResponse{
		ChallengeID:    result.ChallengeID,
		TeamName:       result.TeamName,
		State:          string(result.State),
		HasSubmitted:   result.HasSubmitted,
		VotesGiven:     given,
		VotesRemaining: result.VotesRemaining,
	}
	if result.Submission != nil {
		sub := mapSubmission(*result.Submission)
		resp.Submission = &sub
	}
	if result.Score != nil {
		row := mapLeaderboardRow(*result.Score, true)
		resp.Score = &row
	}
	return resp, nil
}

// VotesRemainingHandler godoc
// @Summary Remaining vote budget
// @Description Returns the calling team's spent ballot targets as entry keys and the unused budget.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Success 200 {object} httptransport.VotesRemainingResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/votes/remaining [get]
func (h Handler) VotesRemainingHandler(ctx context.Context, teamName string) (httptransport.VotesRemainingResponse, error) {
	votes, err := h.LedgerReads.VotesGivenBy(ctx, teamName)
	if err != nil {
		return httptransport.VotesRemainingResponse{}, err
	}
	remaining, err := h.LedgerReads.VotesRemaining(ctx, teamName)
	if err != nil {
		return httptransport.VotesRemainingResponse{}, err
	}

	given := make([]string, 0, len(votes))
	if len(votes) > 0 {
		sub, found, err := h.LedgerReads.GetSubmission(ctx, teamName)
		if err != nil {
			return httptransport.VotesRemainingResponse{}, err
		}
		if found {
			for _, name := range votes {
				given = append(given, entryKey(sub.ChallengeID, name))
			}
		}
	}

	return httptransport.VotesRemainingResponse{
		TeamName:       teamName,
		VotesGiven:     given,
		VotesRemaining: remaining,
	}, nil
}

// LeaderboardHandler godoc
// @Summary Challenge leaderboard
// @Description Returns scored teams in rank order. Image URLs and the hidden image appear only once the challenge is complete.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Success 200 {object} httptransport.LeaderboardResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/leaderboard [get]
func (h Handler) LeaderboardHandler(ctx context.Context) (httptransport.LeaderboardResponse, error) {
	view, err := h.Leaderboard.Leaderboard(ctx)
	if err != nil {
		return httptransport.LeaderboardResponse{}, err
	}

	resp := httptransport.LeaderboardResponse{
		ChallengeID:         view.ChallengeID,
		State:               string(view.State),
		HiddenImageRevealed: view.HiddenImageRevealed,
		Items:               mapLeaderboardRows(view.Rows, view.State == entities.StateComplete),
	}
	if view.HiddenImage != nil {
		hidden := mapSubmission(*view.HiddenImage)
		resp.HiddenImage = &hidden
	}
	return resp, nil
}

// TeamScoreHandler godoc
// @Summary Single team score
// @Description Returns one team's leaderboard entry once scoring has produced it.
// @Tags pic-perfect
// @Accept json
// @Produce json
// @Security TeamAuth
// @Param X-Team-Id header string true "Team identity"
// @Param team_name path string true "Scored team name"
// @Success 200 {object} httptransport.TeamScoreResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /pic-perfect/leaderboard/{team_name} [get]
func (h Handler) TeamScoreHandler(ctx context.Context, requestingTeam string, teamName string) (httptransport.TeamScoreResponse, error) {
	entry, found, err := h.Leaderboard.TeamScore(ctx, teamName)
	if err != nil {
		return httptransport.TeamScoreResponse{}, err
	}
	if !found {
		return httptransport.TeamScoreResponse{}, domainerrors.ErrScoreNotFound
	}
	// Only a team's own row carries the image link before the public reveal.
	ownRow := strings.TrimSpace(requestingTeam) == entry.TeamName
	return httptransport.TeamScoreResponse{Item: mapLeaderboardRow(entry, ownRow)}, nil
}

// entryKey derives the anonymized pool identifier for one gallery entry.
// The key is stable for the life of a challenge, so ballots and status
// reads agree on it, and it carries no recoverable team identity.
func entryKey(challengeID, teamName string) string {
	sum := sha256.Sum256([]byte(challengeID + "|" + teamName))
	return "img-" + hex.EncodeToString(sum[:])[:12]
}

// poolIndex maps entry keys to ledger team names and back. It indexes the
// unfiltered pool, self and hidden entries included, so every resolvable
// ballot target reaches the ledger and is judged there.
func (h Handler) poolIndex(ctx context.Context) (map[string]string, map[string]string, error) {
	pool, err := h.VotingPool.Execute(ctx, "")
	if err != nil {
		return nil, nil, err
	}
	keyToName := make(map[string]string, len(pool))
	nameToKey := make(map[string]string, len(pool))
	for _, sub := range pool {
		key := entryKey(sub.ChallengeID, sub.TeamName)
		keyToName[key] = sub.TeamName
		nameToKey[sub.TeamName] = key
	}
	return keyToName, nameToKey, nil
}

func mapSubmission(sub entities.Submission) httptransport.SubmissionDTO {
	return httptransport.SubmissionDTO{
		TeamName:    sub.TeamName,
		ImageURL:    sub.ImageURL,
		Prompt:      sub.Prompt,
		Hidden:      sub.Hidden,
		SubmittedAt: sub.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func mapLeaderboardRows(rows []entities.LeaderboardEntry, revealImages bool) []httptransport.LeaderboardRowDTO {
	items := make([]httptransport.LeaderboardRowDTO, 0, len(rows))
	for i, row := range rows {
		item := mapLeaderboardRow(row, revealImages)
		item.Rank = i + 1
		items = append(items, item)
	}
	return items
}

func mapLeaderboardRow(row entities.LeaderboardEntry, revealImage bool) httptransport.LeaderboardRowDTO {
	item := httptransport.LeaderboardRowDTO{
		TeamName:        row.TeamName,
		DeceptionPoints: row.DeceptionPoints,
		DiscoveryPoints: row.DiscoveryPoints,
		TotalPoints:     row.TotalPoints,
		VotesReceived:   row.VotesReceived,
		VotedForHidden:  row.VotedForHidden,
	}
	if revealImage {
		item.ImageURL = row.ImageURL
	}
	return item
}
