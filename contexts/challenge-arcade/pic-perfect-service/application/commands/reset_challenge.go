package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type ResetChallengeResult struct {
	ChallengeID string
	Cleared     bool
}

// ResetChallengeUseCase wipes one challenge: votes, submissions, leaderboard
// rows, and finally the Challenge record itself. The team registry is never
// touched. Resetting an uninitialized challenge is a no-op success so the
// operation can be retried safely.
type ResetChallengeUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Votes       ports.VoteLedger
	Leaderboard ports.LeaderboardRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ChallengeID string
	Logger      *slog.Logger
}

func (uc ResetChallengeUseCase) Execute(ctx context.Context) (ResetChallengeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()

	_, existed, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return ResetChallengeResult{}, err
	}

	if err := uc.Votes.DeleteVotes(ctx, challengeID); err != nil {
		return ResetChallengeResult{}, err
	}
	if err := uc.Submissions.DeleteSubmissions(ctx, challengeID); err != nil {
		return ResetChallengeResult{}, err
	}
	if err := uc.Leaderboard.ResetLeaderboard(ctx, challengeID); err != nil {
		return ResetChallengeResult{}, err
	}
	if err := uc.Challenges.DeleteChallenge(ctx, challengeID); err != nil {
		return ResetChallengeResult{}, err
	}

	if err := uc.appendEvent(ctx, challengeID, uc.now()); err != nil {
		return ResetChallengeResult{}, err
	}

	logger.Info("challenge reset",
		"event", "pic_perfect_challenge_reset",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"existed", existed,
	)
	return ResetChallengeResult{ChallengeID: challengeID, Cleared: existed}, nil
}

func (uc ResetChallengeUseCase) appendEvent(ctx context.Context, challengeID string, occurredAt time.Time) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.reset", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc ResetChallengeUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc ResetChallengeUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
