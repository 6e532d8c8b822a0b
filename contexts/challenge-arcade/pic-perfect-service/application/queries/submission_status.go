package queries

import (
	"context"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type SubmissionStatusResult struct {
	ChallengeID           string
	State                 entities.ChallengeState
	SubmittedTeams        []string
	PendingTeams          []string
	RegisteredTeams       int
	HiddenImageSet        bool
	CanTransitionToVoting bool
}

// SubmissionStatusUseCase reports submission coverage during the SUBMISSION
// phase: who has submitted, who is pending, and whether voting may open.
type SubmissionStatusUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Teams       ports.TeamDirectory
	ChallengeID string
	VoteCap     int
}

func (uc SubmissionStatusUseCase) Execute(ctx context.Context) (SubmissionStatusResult, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)
	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return SubmissionStatusResult{}, err
	}
	if !found {
		return SubmissionStatusResult{}, domainerrors.ErrChallengeNotInitialized
	}

	registered, err := uc.Teams.ListTeamNames(ctx)
	if err != nil {
		return SubmissionStatusResult{}, err
	}
	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return SubmissionStatusResult{}, err
	}
	census := application.BuildCensus(registered, submissions, uc.VoteCap)

	return SubmissionStatusResult{
		ChallengeID:           challengeID,
		State:                 challenge.State,
		SubmittedTeams:        census.SubmittedTeams,
		PendingTeams:          census.PendingTeams,
		RegisteredTeams:       len(census.RegisteredTeams),
		HiddenImageSet:        census.HiddenImageSet,
		CanTransitionToVoting: census.CanTransitionToVoting(),
	}, nil
}
