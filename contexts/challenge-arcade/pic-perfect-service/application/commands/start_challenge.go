package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// StartChallengeCommand bootstraps the challenge with the hidden original.
type StartChallengeCommand struct {
	ImageURL string
	Prompt   string
	Config   map[string]any
}

// HiddenImageOutcome reports the delegated hidden intake. Start succeeds
// even when the intake fails, so callers inspect this instead of the error
// return.
type HiddenImageOutcome struct {
	Accepted bool
	Detail   string
}

type StartChallengeResult struct {
	Challenge   entities.Challenge
	Initialized bool
	HiddenImage HiddenImageOutcome
}

// StartChallengeUseCase is the idempotent bootstrap: it creates the
// Challenge record only when absent (resetting the leaderboard on that first
// initialization), unconditionally sets the phase to SUBMISSION, then
// delegates hidden-image intake to the ledger.
type StartChallengeUseCase struct {
	Challenges   ports.ChallengeRepository
	Leaderboard  ports.LeaderboardRepository
	HiddenIntake SubmitHiddenImageUseCase
	Outbox       ports.OutboxWriter
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	ChallengeID  string
	Logger       *slog.Logger
}

func (uc StartChallengeUseCase) Execute(ctx context.Context, cmd StartChallengeCommand) (StartChallengeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()
	if strings.TrimSpace(cmd.ImageURL) == "" || strings.TrimSpace(cmd.Prompt) == "" {
		logger.Warn("challenge start validation failed",
			"event", "pic_perfect_start_validation_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
		)
		return StartChallengeResult{}, domainerrors.ErrInvalidRequest
	}

	now := uc.now()
	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return StartChallengeResult{}, err
	}

	initialized := false
	if !found {
		if err := uc.Leaderboard.ResetLeaderboard(ctx, challengeID); err != nil {
			return StartChallengeResult{}, err
		}
		challenge = entities.Challenge{
			ChallengeID: challengeID,
			State:       entities.StateSubmission,
			StartTime:   now,
			Config:      cmd.Config,
			UpdatedAt:   now,
		}
		initialized = true
	} else {
		// Re-start keeps the existing record and its leaderboard; only the
		// phase is forced back to SUBMISSION.
		challenge.State = entities.StateSubmission
		challenge.UpdatedAt = now
	}
	if err := uc.Challenges.SaveChallenge(ctx, challenge); err != nil {
		return StartChallengeResult{}, err
	}

	outcome := HiddenImageOutcome{Accepted: true, Detail: "hidden image submitted"}
	if _, err := uc.HiddenIntake.Execute(ctx, SubmitHiddenImageCommand{
		ImageURL: cmd.ImageURL,
		Prompt:   cmd.Prompt,
	}); err != nil {
		outcome = HiddenImageOutcome{Accepted: false, Detail: err.Error()}
		logger.Warn("hidden image intake failed during start",
			"event", "pic_perfect_start_hidden_intake_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"error", err.Error(),
		)
	}

	// Reload so the returned record reflects the metadata written by the
	// hidden intake.
	if refreshed, ok, err := uc.Challenges.GetChallenge(ctx, challengeID); err == nil && ok {
		challenge = refreshed
	}

	if err := uc.appendEvent(ctx, challengeID, initialized, now); err != nil {
		return StartChallengeResult{}, err
	}

	logger.Info("challenge started",
		"event", "pic_perfect_challenge_started",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"initialized", initialized,
		"hidden_image_accepted", outcome.Accepted,
	)
	return StartChallengeResult{
		Challenge:   challenge,
		Initialized: initialized,
		HiddenImage: outcome,
	}, nil
}

func (uc StartChallengeUseCase) appendEvent(ctx context.Context, challengeID string, initialized bool, occurredAt time.Time) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.started", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"initialized":  initialized,
		"state":        string(entities.StateSubmission),
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc StartChallengeUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc StartChallengeUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
