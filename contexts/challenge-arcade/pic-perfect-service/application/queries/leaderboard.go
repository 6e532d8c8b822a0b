package queries

import (
	"context"
	"strings"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type LeaderboardView struct {
	ChallengeID         string
	State               entities.ChallengeState
	HiddenImageRevealed bool
	Rows                []entities.LeaderboardEntry
	HiddenImage         *entities.Submission
}

// LeaderboardUseCase serves ranked standings. The hidden image stays out
// of the payload until the challenge completes.
type LeaderboardUseCase struct {
	Challenges   ports.ChallengeRepository
	Submissions  ports.SubmissionRepository
	Leaderboards ports.LeaderboardRepository
	ChallengeID  string
}

func (uc LeaderboardUseCase) Leaderboard(ctx context.Context) (LeaderboardView, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return LeaderboardView{}, err
	}
	if !found {
		return LeaderboardView{}, domainerrors.ErrChallengeNotInitialized
	}

	rows, err := uc.Leaderboards.ListLeaderboard(ctx, challengeID)
	if err != nil {
		return LeaderboardView{}, err
	}
	entities.SortByRank(rows)

	view := LeaderboardView{
		ChallengeID:         challengeID,
		State:               challenge.State,
		HiddenImageRevealed: challenge.Metadata.HiddenImageRevealed,
		Rows:                rows,
	}
	if challenge.State == entities.StateComplete {
		if hidden, found, err := uc.Submissions.GetSubmission(ctx, challengeID, entities.HiddenTeamKey); err != nil {
			return LeaderboardView{}, err
		} else if found {
			view.HiddenImage = &hidden
		}
	}
	return view, nil
}

func (uc LeaderboardUseCase) TeamScore(ctx context.Context, teamName string) (entities.LeaderboardEntry, bool, error) {
	team := strings.TrimSpace(teamName)
	if team == "" {
		return entities.LeaderboardEntry{}, false, domainerrors.ErrInvalidRequest
	}
	return uc.Leaderboards.GetLeaderboardEntry(ctx, resolveChallengeID(uc.ChallengeID), team)
}
