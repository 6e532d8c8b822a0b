package queries

import (
	"context"
	"strings"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type TeamStatusResult struct {
	ChallengeID    string
	TeamName       string
	State          entities.ChallengeState
	HasSubmitted   bool
	Submission     *entities.Submission
	VotesGiven     []string
	VotesRemaining int
	Score          *entities.LeaderboardEntry
}

// TeamStatusUseCase is one team's view of its own progress: submission,
// votes spent, and current score row if any.
type TeamStatusUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Leaderboard ports.LeaderboardRepository
	ChallengeID string
	VoteCap     int
}

func (uc TeamStatusUseCase) Execute(ctx context.Context, teamName string) (TeamStatusResult, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)
	team := strings.TrimSpace(teamName)
	if team == "" || team == entities.HiddenTeamKey {
		return TeamStatusResult{}, domainerrors.ErrInvalidRequest
	}

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return TeamStatusResult{}, err
	}
	if !found {
		return TeamStatusResult{}, domainerrors.ErrChallengeNotInitialized
	}

	capLimit := uc.VoteCap
	if capLimit < 1 {
		capLimit = entities.DefaultVoteCap
	}
	result := TeamStatusResult{
		ChallengeID:    challengeID,
		TeamName:       team,
		State:          challenge.State,
		VotesRemaining: capLimit,
	}

	submission, found, err := uc.Submissions.GetSubmission(ctx, challengeID, team)
	if err != nil {
		return TeamStatusResult{}, err
	}
	if found {
		result.HasSubmitted = true
		result.Submission = &submission
		result.VotesGiven = submission.VotesGiven
		remaining := capLimit - submission.VotesUsed()
		if remaining < 0 {
			remaining = 0
		}
		result.VotesRemaining = remaining
	}

	if entry, found, err := uc.Leaderboard.GetLeaderboardEntry(ctx, challengeID, team); err != nil {
		return TeamStatusResult{}, err
	} else if found {
		result.Score = &entry
	}
	return result, nil
}
