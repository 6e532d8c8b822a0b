package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// CastVotesCommand is one team's vote batch. The batch is all-or-nothing.
type CastVotesCommand struct {
	VoterTeam      string
	Targets        []string
	IdempotencyKey string
}

type CastVotesResult struct {
	ReceiptID       string
	AcceptedTargets []string
	VotesRemaining  int
	Replayed        bool
}

// CastVotesUseCase enforces the vote-casting protocol. All five checks run
// against the pre-mutation snapshot of the voter's given votes; only a batch
// that passes every check is appended to the ledger, in one call.
type CastVotesUseCase struct {
	Challenges     ports.ChallengeRepository
	Submissions    ports.SubmissionRepository
	Votes          ports.VoteLedger
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	ChallengeID    string
	VoteCap        int
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc CastVotesUseCase) Execute(ctx context.Context, cmd CastVotesCommand) (CastVotesResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()
	voter := strings.TrimSpace(cmd.VoterTeam)
	capLimit := uc.voteCap()

	logger.Info("vote batch processing started",
		"event", "pic_perfect_vote_started",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"voter_team", voter,
		"target_count", len(cmd.Targets),
	)
	if voter == "" || voter == entities.HiddenTeamKey || len(cmd.Targets) == 0 {
		logger.Warn("vote batch validation failed",
			"event", "pic_perfect_vote_validation_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"voter_team", voter,
		)
		return CastVotesResult{}, domainerrors.ErrInvalidRequest
	}
	targets := make([]string, 0, len(cmd.Targets))
	for _, target := range cmd.Targets {
		trimmed := strings.TrimSpace(target)
		if trimmed == "" {
			return CastVotesResult{}, domainerrors.ErrInvalidRequest
		}
		targets = append(targets, trimmed)
	}
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return CastVotesResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	now := uc.now()
	requestHash := hashCastVotesCommand(challengeID, voter, targets)
	if record, found, err := uc.Idempotency.Get(ctx, cmd.IdempotencyKey, now); err != nil {
		return CastVotesResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return CastVotesResult{}, domainerrors.ErrIdempotencyConflict
		}
		return uc.replay(ctx, logger, challengeID, voter, capLimit, record.Reference)
	}

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return CastVotesResult{}, err
	}
	if !found {
		return CastVotesResult{}, domainerrors.ErrChallengeNotInitialized
	}
	if challenge.State != entities.StateVoting {
		return CastVotesResult{}, domainerrors.ErrInvalidState
	}

	voterSubmission, found, err := uc.Submissions.GetSubmission(ctx, challengeID, voter)
	if err != nil {
		return CastVotesResult{}, err
	}
	if !found {
		return CastVotesResult{}, domainerrors.ErrTeamNotRegistered
	}

	// Check (a): the batch itself must not repeat a target.
	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if seen[target] {
			return CastVotesResult{}, fmt.Errorf("%w: %s listed more than once", domainerrors.ErrDuplicateVote, target)
		}
		seen[target] = true
	}

	// Check (b): no voting for your own image.
	if seen[voter] {
		return CastVotesResult{}, domainerrors.ErrSelfVote
	}

	// Check (c): any already-voted target rejects the whole batch.
	var alreadyVoted []string
	for _, target := range targets {
		if voterSubmission.HasVotedFor(target) {
			alreadyVoted = append(alreadyVoted, target)
		}
	}
	if len(alreadyVoted) > 0 {
		return CastVotesResult{}, fmt.Errorf("%w: already voted for %s",
			domainerrors.ErrDuplicateVote, strings.Join(alreadyVoted, ", "))
	}

	// Check (d): the batch must fit the remaining capacity.
	remaining := capLimit - voterSubmission.VotesUsed()
	if remaining < 0 {
		remaining = 0
	}
	if len(targets) > remaining {
		return CastVotesResult{}, fmt.Errorf("%w: %d votes remaining, batch has %d",
			domainerrors.ErrVoteLimitExceeded, remaining, len(targets))
	}

	// Check (e): every target must have a submission.
	for _, target := range targets {
		if _, exists, err := uc.Submissions.GetSubmission(ctx, challengeID, target); err != nil {
			return CastVotesResult{}, err
		} else if !exists {
			return CastVotesResult{}, fmt.Errorf("%w: %s", domainerrors.ErrUnknownVoteTarget, target)
		}
	}

	receiptID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return CastVotesResult{}, err
	}
	records := make([]entities.VoteRecord, 0, len(targets))
	for _, target := range targets {
		voteID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return CastVotesResult{}, err
		}
		records = append(records, entities.VoteRecord{
			VoteID:      voteID,
			ChallengeID: challengeID,
			VoterTeam:   voter,
			TargetTeam:  target,
			ReceiptID:   receiptID,
			CastAt:      now,
		})
	}
	if err := uc.Votes.AppendVotes(ctx, challengeID, voter, records, capLimit); err != nil {
		return CastVotesResult{}, err
	}

	votesRemaining := capLimit - voterSubmission.VotesUsed() - len(targets)
	if votesRemaining < 0 {
		votesRemaining = 0
	}

	if err := uc.appendEvent(ctx, challengeID, voter, targets, receiptID, now); err != nil {
		return CastVotesResult{}, err
	}
	if err := uc.Idempotency.Put(ctx, ports.IdempotencyRecord{
		Key:         strings.TrimSpace(cmd.IdempotencyKey),
		RequestHash: requestHash,
		Reference:   receiptID,
		ExpiresAt:   now.Add(uc.resolveIdempotencyTTL()),
	}); err != nil {
		return CastVotesResult{}, err
	}

	logger.Info("vote batch accepted",
		"event", "pic_perfect_vote_accepted",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"voter_team", voter,
		"accepted_count", len(targets),
		"votes_remaining", votesRemaining,
	)
	return CastVotesResult{
		ReceiptID:       receiptID,
		AcceptedTargets: targets,
		VotesRemaining:  votesRemaining,
	}, nil
}

// replay rebuilds the original response from the ledger: the receipt's own
// records are the accepted targets, and remaining capacity is derived from
// the voter's full vote count.
func (uc CastVotesUseCase) replay(
	ctx context.Context,
	logger *slog.Logger,
	challengeID string,
	voter string,
	capLimit int,
	receiptID string,
) (CastVotesResult, error) {
	votes, err := uc.Votes.ListVotesByVoter(ctx, challengeID, voter)
	if err != nil {
		return CastVotesResult{}, err
	}
	accepted := make([]string, 0, len(votes))
	for _, vote := range votes {
		if vote.ReceiptID == receiptID {
			accepted = append(accepted, vote.TargetTeam)
		}
	}
	remaining := capLimit - len(votes)
	if remaining < 0 {
		remaining = 0
	}
	logger.Info("vote batch replayed",
		"event", "pic_perfect_vote_replayed",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"voter_team", voter,
		"receipt_id", receiptID,
	)
	return CastVotesResult{
		ReceiptID:       receiptID,
		AcceptedTargets: accepted,
		VotesRemaining:  remaining,
		Replayed:        true,
	}, nil
}

func (uc CastVotesUseCase) appendEvent(
	ctx context.Context,
	challengeID string,
	voter string,
	targets []string,
	receiptID string,
	occurredAt time.Time,
) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "vote.cast", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"voter_team":   voter,
		"targets":      targets,
		"receipt_id":   receiptID,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc CastVotesUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc CastVotesUseCase) voteCap() int {
	if uc.VoteCap < 1 {
		return entities.DefaultVoteCap
	}
	return uc.VoteCap
}

func (uc CastVotesUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc CastVotesUseCase) resolveIdempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func hashCastVotesCommand(challengeID string, voter string, targets []string) string {
	payload := map[string]any{
		"challenge_id": challengeID,
		"voter_team":   voter,
		"targets":      targets,
		"op":           "cast_votes",
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
