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

type CalculateScoresResult struct {
	ChallengeID string
	Rows        []entities.LeaderboardEntry
}

// CalculateScoresUseCase recomputes every non-hidden team's score from the
// ledger and overwrites the leaderboard rows. The computation is a pure
// function of the vote ledger, so repeated runs with no new votes write and
// return identical rows. Allowed during SCORING and, for re-runs after
// finalize, COMPLETE.
type CalculateScoresUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Leaderboard ports.LeaderboardRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ChallengeID string
	Logger      *slog.Logger
}

func (uc CalculateScoresUseCase) Execute(ctx context.Context) (CalculateScoresResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return CalculateScoresResult{}, err
	}
	if !found {
		return CalculateScoresResult{}, domainerrors.ErrChallengeNotInitialized
	}
	if challenge.State != entities.StateScoring && challenge.State != entities.StateComplete {
		return CalculateScoresResult{}, domainerrors.ErrInvalidState
	}

	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return CalculateScoresResult{}, err
	}

	now := uc.now()
	rows := make([]entities.LeaderboardEntry, 0, len(submissions))
	for _, submission := range submissions {
		if submission.Hidden {
			continue
		}
		row := entities.ScoreSubmission(submission)
		row.UpdatedAt = now
		if err := uc.Leaderboard.UpsertLeaderboardEntry(ctx, row); err != nil {
			// Per-row writes are not transactional: rows already written stay
			// written, and the caller re-invokes to repair.
			logger.Error("leaderboard row write failed",
				"event", "pic_perfect_score_write_failed",
				"module", "challenge-arcade/pic-perfect-service",
				"layer", "application",
				"challenge_id", challengeID,
				"team_name", submission.TeamName,
				"error", err.Error(),
			)
			return CalculateScoresResult{}, err
		}
		rows = append(rows, row)
	}
	entities.SortByRank(rows)

	if err := uc.appendEvent(ctx, challengeID, len(rows), now); err != nil {
		return CalculateScoresResult{}, err
	}

	logger.Info("scores calculated",
		"event", "pic_perfect_scores_calculated",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"row_count", len(rows),
	)
	return CalculateScoresResult{ChallengeID: challengeID, Rows: rows}, nil
}

func (uc CalculateScoresUseCase) appendEvent(ctx context.Context, challengeID string, rowCount int, occurredAt time.Time) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.scores_calculated", challengeID, occurredAt, map[string]any{
		"challenge_id": challengeID,
		"row_count":    rowCount,
		"occurred_at":  occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc CalculateScoresUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc CalculateScoresUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
