package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// SubmitImageCommand is one team's gallery entry during SUBMISSION.
type SubmitImageCommand struct {
	TeamName       string
	ImageURL       string
	Prompt         string
	IdempotencyKey string
}

type SubmitImageResult struct {
	Submission entities.Submission
	Replayed   bool
}

// SubmitImageUseCase validates a team submission against the phase, the team
// registry, and the one-submission-per-team rule, then writes the submission
// together with its zero-score leaderboard stub.
type SubmitImageUseCase struct {
	Challenges     ports.ChallengeRepository
	Submissions    ports.SubmissionRepository
	Leaderboard    ports.LeaderboardRepository
	Teams          ports.TeamDirectory
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	ChallengeID    string
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc SubmitImageUseCase) Execute(ctx context.Context, cmd SubmitImageCommand) (SubmitImageResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()
	teamName := strings.TrimSpace(cmd.TeamName)
	imageURL := strings.TrimSpace(cmd.ImageURL)
	prompt := strings.TrimSpace(cmd.Prompt)

	logger.Info("image submission started",
		"event", "pic_perfect_submit_started",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"team_name", teamName,
	)
	if teamName == "" || imageURL == "" || prompt == "" || teamName == entities.HiddenTeamKey {
		logger.Warn("image submission validation failed",
			"event", "pic_perfect_submit_validation_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"team_name", teamName,
		)
		return SubmitImageResult{}, domainerrors.ErrInvalidRequest
	}
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return SubmitImageResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	now := uc.now()
	requestHash := hashSubmitImageCommand(challengeID, cmd)
	if record, found, err := uc.Idempotency.Get(ctx, cmd.IdempotencyKey, now); err != nil {
		return SubmitImageResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return SubmitImageResult{}, domainerrors.ErrIdempotencyConflict
		}
		submission, ok, err := uc.Submissions.GetSubmission(ctx, challengeID, record.Reference)
		if err != nil {
			return SubmitImageResult{}, err
		}
		if !ok {
			return SubmitImageResult{}, domainerrors.ErrChallengeNotInitialized
		}
		logger.Info("image submission replayed",
			"event", "pic_perfect_submit_replayed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"team_name", teamName,
		)
		return SubmitImageResult{Submission: submission, Replayed: true}, nil
	}

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return SubmitImageResult{}, err
	}
	if !found {
		return SubmitImageResult{}, domainerrors.ErrChallengeNotInitialized
	}
	if challenge.State != entities.StateSubmission {
		return SubmitImageResult{}, domainerrors.ErrInvalidState
	}

	registered, err := uc.Teams.TeamExists(ctx, teamName)
	if err != nil {
		return SubmitImageResult{}, err
	}
	if !registered {
		return SubmitImageResult{}, domainerrors.ErrTeamNotRegistered
	}

	if _, exists, err := uc.Submissions.GetSubmission(ctx, challengeID, teamName); err != nil {
		return SubmitImageResult{}, err
	} else if exists {
		return SubmitImageResult{}, domainerrors.ErrDuplicateSubmission
	}

	submission := entities.Submission{
		ChallengeID: challengeID,
		TeamName:    teamName,
		ImageURL:    imageURL,
		Prompt:      prompt,
		SubmittedAt: now,
	}
	if err := uc.Submissions.SaveSubmission(ctx, submission); err != nil {
		return SubmitImageResult{}, err
	}

	// Zero-score stub so the leaderboard lists every participant before the
	// scoring pass overwrites the score fields.
	if err := uc.Leaderboard.UpsertLeaderboardEntry(ctx, entities.LeaderboardEntry{
		ChallengeID: challengeID,
		TeamName:    teamName,
		ImageURL:    imageURL,
		UpdatedAt:   now,
	}); err != nil {
		return SubmitImageResult{}, err
	}

	if err := uc.appendEvent(ctx, challengeID, teamName, now); err != nil {
		return SubmitImageResult{}, err
	}
	if err := uc.Idempotency.Put(ctx, ports.IdempotencyRecord{
		Key:         strings.TrimSpace(cmd.IdempotencyKey),
		RequestHash: requestHash,
		Reference:   teamName,
		ExpiresAt:   now.Add(uc.resolveIdempotencyTTL()),
	}); err != nil {
		return SubmitImageResult{}, err
	}

	logger.Info("image submitted",
		"event", "pic_perfect_image_submitted",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"team_name", teamName,
	)
	return SubmitImageResult{Submission: submission}, nil
}

func (uc SubmitImageUseCase) appendEvent(ctx context.Context, challengeID string, teamName string, occurredAt time.Time) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "submission.received", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"team_name":    teamName,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc SubmitImageUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc SubmitImageUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc SubmitImageUseCase) resolveIdempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func hashSubmitImageCommand(challengeID string, cmd SubmitImageCommand) string {
	payload := map[string]string{
		"challenge_id": challengeID,
		"team_name":    strings.TrimSpace(cmd.TeamName),
		"image_url":    strings.TrimSpace(cmd.ImageURL),
		"prompt":       strings.TrimSpace(cmd.Prompt),
		"op":           "submit_image",
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
