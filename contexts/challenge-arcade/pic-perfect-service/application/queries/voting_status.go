package queries

import (
	"context"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type VotingStatusResult struct {
	ChallengeID            string
	State                  entities.ChallengeState
	Progress               []application.TeamVoteProgress
	AllVotesCast           bool
	CanTransitionToScoring bool
}

// VotingStatusUseCase reports vote-budget usage per submitting team and
// whether scoring may begin.
type VotingStatusUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Teams       ports.TeamDirectory
	ChallengeID string
	VoteCap     int
}

func (uc VotingStatusUseCase) Execute(ctx context.Context) (VotingStatusResult, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)
	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return VotingStatusResult{}, err
	}
	if !found {
		return VotingStatusResult{}, domainerrors.ErrChallengeNotInitialized
	}

	registered, err := uc.Teams.ListTeamNames(ctx)
	if err != nil {
		return VotingStatusResult{}, err
	}
	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return VotingStatusResult{}, err
	}
	census := application.BuildCensus(registered, submissions, uc.VoteCap)
	canScore := census.CanTransitionToScoring()

	return VotingStatusResult{
		ChallengeID:            challengeID,
		State:                  challenge.State,
		Progress:               census.VoteProgress,
		AllVotesCast:           canScore,
		CanTransitionToScoring: canScore,
	}, nil
}
