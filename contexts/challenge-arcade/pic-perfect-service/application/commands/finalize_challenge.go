package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type FinalizeChallengeResult struct {
	ChallengeID   string
	PreviousState entities.ChallengeState
	CurrentState  entities.ChallengeState
	EndTime       time.Time
	Rows          []entities.LeaderboardEntry
	ScoringError  string
}

// FinalizeChallengeUseCase runs the scoring pass, reveals the hidden image,
// and completes the challenge. Finalize is best-effort by contract: a
// scoring failure is reported in the result but does not stop the phase
// advance, and re-running calculateScores afterwards repairs the rows.
type FinalizeChallengeUseCase struct {
	Challenges  ports.ChallengeRepository
	Scoring     CalculateScoresUseCase
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ChallengeID string
	Logger      *slog.Logger
}

func (uc FinalizeChallengeUseCase) Execute(ctx context.Context) (FinalizeChallengeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return FinalizeChallengeResult{}, err
	}
	if !found {
		return FinalizeChallengeResult{}, domainerrors.ErrChallengeNotInitialized
	}
	previous := challenge.State
	if _, ok := entities.TransitionSpec(previous, entities.StateComplete); !ok {
		return FinalizeChallengeResult{}, fmt.Errorf("%w: %s to %s",
			domainerrors.ErrInvalidTransition, previous, entities.StateComplete)
	}

	scoringError := ""
	scores, err := uc.Scoring.Execute(ctx)
	if err != nil {
		scoringError = err.Error()
		logger.Warn("scoring failed during finalize; completing anyway",
			"event", "pic_perfect_finalize_scoring_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"error", err.Error(),
		)
	}

	now := uc.now()
	endTime := now
	challenge.State = entities.StateComplete
	challenge.EndTime = &endTime
	challenge.Metadata.HiddenImageRevealed = true
	challenge.UpdatedAt = now
	if err := uc.Challenges.SaveChallenge(ctx, challenge); err != nil {
		return FinalizeChallengeResult{}, err
	}

	if err := uc.appendEvent(ctx, challengeID, previous, now); err != nil {
		return FinalizeChallengeResult{}, err
	}

	logger.Info("challenge finalized",
		"event", "pic_perfect_challenge_finalized",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"row_count", len(scores.Rows),
		"scoring_error", scoringError,
	)
	return FinalizeChallengeResult{
		ChallengeID:   challengeID,
		PreviousState: previous,
		CurrentState:  entities.StateComplete,
		EndTime:       endTime,
		Rows:          scores.Rows,
		ScoringError:  scoringError,
	}, nil
}

func (uc FinalizeChallengeUseCase) appendEvent(
	ctx context.Context,
	challengeID string,
	previous entities.ChallengeState,
	occurredAt time.Time,
) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.finalized", challengeID, occurredAt, map[string]any{
		"challenge_id":   challengeID,
		"previous_state": string(previous),
		"current_state":  string(entities.StateComplete),
		"occurred_at":    occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc FinalizeChallengeUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc FinalizeChallengeUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
