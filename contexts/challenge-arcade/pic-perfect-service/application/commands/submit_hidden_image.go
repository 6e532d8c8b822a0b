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

// SubmitHiddenImageCommand carries the concealed original image.
type SubmitHiddenImageCommand struct {
	ImageURL string
	Prompt   string
}

type SubmitHiddenImageResult struct {
	Submission entities.Submission
}

// SubmitHiddenImageUseCase stores the reserved hidden submission and flips
// the challenge metadata so the voting guard can see it. Admin-only by route
// namespace; the engine itself enforces phase and uniqueness only.
type SubmitHiddenImageUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ChallengeID string
	Logger      *slog.Logger
}

func (uc SubmitHiddenImageUseCase) Execute(ctx context.Context, cmd SubmitHiddenImageCommand) (SubmitHiddenImageResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()
	imageURL := strings.TrimSpace(cmd.ImageURL)
	prompt := strings.TrimSpace(cmd.Prompt)
	if imageURL == "" || prompt == "" {
		logger.Warn("hidden image validation failed",
			"event", "pic_perfect_hidden_image_validation_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
		)
		return SubmitHiddenImageResult{}, domainerrors.ErrInvalidRequest
	}

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return SubmitHiddenImageResult{}, err
	}
	if !found {
		return SubmitHiddenImageResult{}, domainerrors.ErrChallengeNotInitialized
	}
	if challenge.State != entities.StateSubmission {
		return SubmitHiddenImageResult{}, domainerrors.ErrInvalidState
	}

	if _, exists, err := uc.Submissions.GetSubmission(ctx, challengeID, entities.HiddenTeamKey); err != nil {
		return SubmitHiddenImageResult{}, err
	} else if exists {
		return SubmitHiddenImageResult{}, domainerrors.ErrDuplicateHiddenSubmission
	}

	now := uc.now()
	submission := entities.Submission{
		ChallengeID: challengeID,
		TeamName:    entities.HiddenTeamKey,
		ImageURL:    imageURL,
		Prompt:      prompt,
		Hidden:      true,
		SubmittedAt: now,
	}
	if err := uc.Submissions.SaveSubmission(ctx, submission); err != nil {
		return SubmitHiddenImageResult{}, err
	}

	challenge.Metadata.HiddenImageSet = true
	challenge.Metadata.HiddenImageRevealed = false
	challenge.UpdatedAt = now
	if err := uc.Challenges.SaveChallenge(ctx, challenge); err != nil {
		return SubmitHiddenImageResult{}, err
	}

	if err := uc.appendEvent(ctx, challengeID, now); err != nil {
		return SubmitHiddenImageResult{}, err
	}

	logger.Info("hidden image submitted",
		"event", "pic_perfect_hidden_image_submitted",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
	)
	return SubmitHiddenImageResult{Submission: submission}, nil
}

func (uc SubmitHiddenImageUseCase) appendEvent(ctx context.Context, challengeID string, occurredAt time.Time) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.hidden_image_set", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc SubmitHiddenImageUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc SubmitHiddenImageUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
