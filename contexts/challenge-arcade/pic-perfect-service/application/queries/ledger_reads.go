package queries

import (
	"context"
	"strings"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// LedgerReadsUseCase exposes the raw ledger lookups the transport layer
// needs without dragging the full team-status projection along.
type LedgerReadsUseCase struct {
	Submissions ports.SubmissionRepository
	ChallengeID string
	VoteCap     int
}

func (uc LedgerReadsUseCase) GetSubmission(ctx context.Context, teamName string) (entities.Submission, bool, error) {
	team := strings.TrimSpace(teamName)
	if team == "" {
		return entities.Submission{}, false, domainerrors.ErrInvalidRequest
	}
	return uc.Submissions.GetSubmission(ctx, resolveChallengeID(uc.ChallengeID), team)
}

func (uc LedgerReadsUseCase) VotesGivenBy(ctx context.Context, teamName string) ([]string, error) {
	submission, found, err := uc.GetSubmission(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}
	given := make([]string, len(submission.VotesGiven))
	copy(given, submission.VotesGiven)
	return given, nil
}

// VotesRemaining reports the unused vote budget. A team that never
// submitted holds the full budget, so the value is the cap until the
// first accepted ballot shrinks it.
func (uc LedgerReadsUseCase) VotesRemaining(ctx context.Context, teamName string) (int, error) {
	capLimit := uc.VoteCap
	if capLimit < 1 {
		capLimit = entities.DefaultVoteCap
	}
	submission, found, err := uc.GetSubmission(ctx, teamName)
	if err != nil {
		return 0, err
	}
	if !found {
		return capLimit, nil
	}
	remaining := capLimit - submission.VotesUsed()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
