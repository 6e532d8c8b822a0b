package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// TransitionStateCommand requests a phase change to the named target state.
type TransitionStateCommand struct {
	TargetState string
}

type TransitionStateResult struct {
	ChallengeID   string
	PreviousState entities.ChallengeState
	CurrentState  entities.ChallengeState
}

// TransitionStateUseCase applies the transition table. A pair absent from
// the table or with a failing guard leaves the stored state untouched.
type TransitionStateUseCase struct {
	Challenges  ports.ChallengeRepository
	Submissions ports.SubmissionRepository
	Teams       ports.TeamDirectory
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ChallengeID string
	VoteCap     int
	Logger      *slog.Logger
}

func (uc TransitionStateUseCase) Execute(ctx context.Context, cmd TransitionStateCommand) (TransitionStateResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	challengeID := uc.challengeID()

	target, ok := entities.ParseChallengeState(cmd.TargetState)
	if !ok {
		logger.Warn("transition target unparseable",
			"event", "pic_perfect_transition_validation_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"target_state", strings.TrimSpace(cmd.TargetState),
		)
		return TransitionStateResult{}, domainerrors.ErrInvalidRequest
	}

	challenge, found, err := uc.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return TransitionStateResult{}, err
	}
	if !found {
		return TransitionStateResult{}, domainerrors.ErrChallengeNotInitialized
	}
	previous := challenge.State

	guard, ok := entities.TransitionSpec(previous, target)
	if !ok {
		logger.Warn("transition rejected by table",
			"event", "pic_perfect_transition_rejected",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"from_state", string(previous),
			"to_state", string(target),
		)
		return TransitionStateResult{}, fmt.Errorf("%w: %s to %s",
			domainerrors.ErrInvalidTransition, previous, target)
	}
	if err := uc.evaluateGuard(ctx, challengeID, guard); err != nil {
		logger.Warn("transition rejected by guard",
			"event", "pic_perfect_transition_guard_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "application",
			"challenge_id", challengeID,
			"from_state", string(previous),
			"to_state", string(target),
			"guard", string(guard),
		)
		return TransitionStateResult{}, err
	}

	now := uc.now()
	challenge.State = target
	challenge.UpdatedAt = now
	if err := uc.Challenges.SaveChallenge(ctx, challenge); err != nil {
		return TransitionStateResult{}, err
	}

	if err := uc.appendEvent(ctx, challengeID, previous, target, now); err != nil {
		return TransitionStateResult{}, err
	}

	logger.Info("challenge state changed",
		"event", "pic_perfect_state_changed",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "application",
		"challenge_id", challengeID,
		"from_state", string(previous),
		"to_state", string(target),
	)
	return TransitionStateResult{ChallengeID: challengeID, PreviousState: previous, CurrentState: target}, nil
}

func (uc TransitionStateUseCase) evaluateGuard(ctx context.Context, challengeID string, guard entities.TransitionGuard) error {
	if guard == entities.GuardNone {
		return nil
	}

	registered, err := uc.Teams.ListTeamNames(ctx)
	if err != nil {
		return err
	}
	submissions, err := uc.Submissions.ListSubmissions(ctx, challengeID)
	if err != nil {
		return err
	}
	census := application.BuildCensus(registered, submissions, uc.VoteCap)

	switch guard {
	case entities.GuardAllTeamsSubmitted:
		if !census.CanTransitionToVoting() {
			return fmt.Errorf("%w: not all teams have submitted or the hidden image is missing",
				domainerrors.ErrInvalidTransition)
		}
	case entities.GuardAllVotesCast:
		if !census.CanTransitionToScoring() {
			return fmt.Errorf("%w: teams still hold unused votes",
				domainerrors.ErrInvalidTransition)
		}
	}
	return nil
}

func (uc TransitionStateUseCase) appendEvent(
	ctx context.Context,
	challengeID string,
	previous entities.ChallengeState,
	current entities.ChallengeState,
	occurredAt time.Time,
) error {
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newChallengeEnvelope(eventID, "challenge.state_changed", challengeID, occurredAt, map[string]any{
		"challenge_id":   challengeID,
		"previous_state": string(previous),
		"current_state":  string(current),
		"occurred_at":    occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func (uc TransitionStateUseCase) challengeID() string {
	if strings.TrimSpace(uc.ChallengeID) == "" {
		return entities.DefaultChallengeID
	}
	return strings.TrimSpace(uc.ChallengeID)
}

func (uc TransitionStateUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
