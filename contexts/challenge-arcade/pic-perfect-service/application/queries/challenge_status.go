package queries

import (
	"context"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

type ChallengeStatusResult struct {
	ChallengeID            string
	State                  entities.ChallengeState
	StartTime              time.Time
	EndTime                *time.Time
	HiddenImageSet         bool
	HiddenImageRevealed    bool
	RegisteredTeams        int
	SubmittedTeams         int
	CanTransitionToVoting  bool
	CanTransitionToScoring bool
}

// ChallengeStatusUseCase is the admin overview: current phase plus both
// guard previews so the operator can see whether the next transition would
// be accepted.
type ChallengeStatusUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Teams       ports.TeamDirectory
	ChallengeID string
	VoteCap     int
}

func (uc ChallengeStatusUseCase) Execute(ctx context.Context) (ChallengeStatusResult, error) {
	challengeID := resolveChallengeID(uc.ChallengeID)
	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return ChallengeStatusResult{}, err
	}
	if !found {
		return ChallengeStatusResult{}, domainerrors.ErrChallengeNotInitialized
	}

	registered, err := uc.Teams.ListTeamNames(ctx)
	if err != nil {
		return ChallengeStatusResult{}, err
	}
	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return ChallengeStatusResult{}, err
	}
	census := application.BuildCensus(registered, submissions, uc.VoteCap)

	return ChallengeStatusResult{
		ChallengeID:            challengeID,
		State:                  challenge.State,
		StartTime:              challenge.StartTime,
		EndTime:                challenge.EndTime,
		HiddenImageSet:         challenge.Metadata.HiddenImageSet,
		HiddenImageRevealed:    challenge.Metadata.HiddenImageRevealed,
		RegisteredTeams:        len(census.RegisteredTeams),
		SubmittedTeams:         len(census.SubmittedTeams),
		CanTransitionToVoting:  census.CanTransitionToVoting(),
		CanTransitionToScoring: census.CanTransitionToScoring(),
	}, nil
}

func resolveChallengeID(configured string) string {
	if strings.TrimSpace(configured) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(configured)
}
