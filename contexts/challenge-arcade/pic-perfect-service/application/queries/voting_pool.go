package queries

import (
	"context"
	"sort"
	"strings"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// VotingPoolUseCase lists the images a team may vote on. The pool hides
// the requester's own entry, keeps the hidden ringer mixed in, and says
// nothing about which entry is which.
type VotingPoolUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	ChallengeID string
}

func (uc VotingPoolUseCase) Execute(ctx context.Context, requestingTeam string) ([]entities.Submission, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)
	requester := strings.TrimSpace(requestingTeam)

	if _, found, err := uc.Challenges.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	} else if !found {
		return nil, domainerrors.ErrChallengeNotInitialized
	}

	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	pool := make([]entities.Submission, 0, len(submissions))
	for _, submission := range submissions {
		if submission.TeamName == requester {
			continue
		}
		pool = append(pool, submission)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].TeamName < pool[j].TeamName })
	return pool, nil
}
