package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	picperfectservice "arcade/contexts/challenge-arcade/pic-perfect-service"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	httptransport "arcade/contexts/challenge-arcade/pic-perfect-service/transport/http"
)

func votingPicPerfectModule(t *testing.T, teams []string) picperfectservice.Module {
	t.Helper()
	module := startedPicPerfectModule(t, teams)
	for _, team := range teams {
		submitPicPerfectImage(t, module, team)
	}
	if _, err := module.Handler.TransitionStateHandler(context.Background(), httptransport.TransitionStateRequest{TargetState: "voting"}); err != nil {
		t.Fatalf("transition to voting failed: %v", err)
	}
	return module
}

func TestPicPerfectVoteStateGuards(t *testing.T) {
	ctx := context.Background()

	cold := picperfectservice.NewInMemoryModule([]string{"alpha", "bravo"}, nil)
	_, err := cold.Handler.CastVotesHandler(ctx, "alpha", "idem-cold", httptransport.CastVotesRequest{Targets: []string{"bravo"}})
	if !errors.Is(err, domainerrors.ErrChallengeNotInitialized) {
		t.Fatalf("expected not initialized before start, got %v", err)
	}

	submissionPhase := startedPicPerfectModule(t, []string{"alpha", "bravo"})
	_, err = submissionPhase.Handler.CastVotesHandler(ctx, "alpha", "idem-early", httptransport.CastVotesRequest{Targets: []string{"bravo"}})
	if !errors.Is(err, domainerrors.ErrInvalidState) {
		t.Fatalf("expected state rejection during submission, got %v", err)
	}

	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie"})

	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-empty", httptransport.CastVotesRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected empty ballot rejection, got %v", err)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "", httptransport.CastVotesRequest{Targets: []string{"bravo"}})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyRequired) {
		t.Fatalf("expected idempotency key requirement, got %v", err)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "HIDDEN_IMAGE", "idem-ringer", httptransport.CastVotesRequest{Targets: []string{"bravo"}})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected hidden entry rejection as voter, got %v", err)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "ghost", "idem-ghost", httptransport.CastVotesRequest{Targets: []string{"bravo"}})
	if !errors.Is(err, domainerrors.ErrTeamNotRegistered) {
		t.Fatalf("expected rejection for voter without a submission, got %v", err)
	}
}

// Ballot checks fire in a fixed order, so a ballot that violates several
// rules always reports the earliest one.
func TestPicPerfectVoteChecksRunInOrder(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie", "delta"})

	// Batch duplicate beats the self-vote check.
	_, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-a", httptransport.CastVotesRequest{
		Targets: []string{"alpha", "alpha"},
	})
	if !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected batch duplicate rejection, got %v", err)
	}

	// Self-vote beats the unknown-target check.
	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-b", httptransport.CastVotesRequest{
		Targets: []string{"alpha", "ghost"},
	})
	if !errors.Is(err, domainerrors.ErrSelfVote) {
		t.Fatalf("expected self-vote rejection, got %v", err)
	}

	first, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-c", httptransport.CastVotesRequest{
		Targets: []string{"bravo"},
	})
	if err != nil {
		t.Fatalf("single vote failed: %v", err)
	}
	if first.VotesRemaining != 2 {
		t.Fatalf("expected 2 votes remaining, got %d", first.VotesRemaining)
	}

	// Already-voted beats the capacity check.
	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-d", httptransport.CastVotesRequest{
		Targets: []string{"bravo", "charlie", "delta"},
	})
	if !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected already-voted rejection, got %v", err)
	}

	// Capacity beats the unknown-target check.
	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-e", httptransport.CastVotesRequest{
		Targets: []string{"charlie", "delta", "ghost"},
	})
	if !errors.Is(err, domainerrors.ErrVoteLimitExceeded) {
		t.Fatalf("expected capacity rejection, got %v", err)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-f", httptransport.CastVotesRequest{
		Targets: []string{"charlie", "ghost"},
	})
	if !errors.Is(err, domainerrors.ErrUnknownVoteTarget) {
		t.Fatalf("expected unknown target rejection, got %v", err)
	}
}

func TestPicPerfectVoteBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie"})

	_, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-mixed", httptransport.CastVotesRequest{
		Targets: []string{"bravo", "ghost"},
	})
	if !errors.Is(err, domainerrors.ErrUnknownVoteTarget) {
		t.Fatalf("expected unknown target rejection, got %v", err)
	}

	// The valid half of the rejected ballot must not land in the ledger.
	remaining, err := module.Handler.VotesRemainingHandler(ctx, "alpha")
	if err != nil {
		t.Fatalf("votes remaining failed: %v", err)
	}
	if remaining.VotesRemaining != 3 || len(remaining.VotesGiven) != 0 {
		t.Fatalf("rejected ballot leaked votes: %+v", remaining)
	}

	accepted, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-clean", httptransport.CastVotesRequest{
		Targets: []string{"bravo", "charlie"},
	})
	if err != nil {
		t.Fatalf("clean ballot failed: %v", err)
	}
	if accepted.VotesRemaining != 1 {
		t.Fatalf("expected 1 vote remaining, got %d", accepted.VotesRemaining)
	}

	remaining, err = module.Handler.VotesRemainingHandler(ctx, "alpha")
	if err != nil {
		t.Fatalf("votes remaining failed: %v", err)
	}
	if remaining.VotesRemaining != 1 || len(remaining.VotesGiven) != 2 {
		t.Fatalf("unexpected ledger view after clean ballot: %+v", remaining)
	}
	for _, given := range remaining.VotesGiven {
		if !strings.HasPrefix(given, "img-") {
			t.Fatalf("votes-given entry %q leaked a team name", given)
		}
	}
}

func TestPicPerfectVoteReplayAndConflict(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie", "delta"})

	keys := poolKeysByURL(t, module, "alpha")
	ballot := []string{keys["https://img.example/bravo.png"], keys["https://img.example/charlie.png"]}

	first, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-ballot", httptransport.CastVotesRequest{Targets: ballot})
	if err != nil {
		t.Fatalf("first ballot failed: %v", err)
	}
	if first.Replayed || first.ReceiptID == "" || first.VotesRemaining != 1 {
		t.Fatalf("unexpected first ballot result: %+v", first)
	}

	replay, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-ballot", httptransport.CastVotesRequest{Targets: ballot})
	if err != nil {
		t.Fatalf("replay ballot failed: %v", err)
	}
	if !replay.Replayed {
		t.Fatalf("expected replayed response for reused key")
	}
	if replay.ReceiptID != first.ReceiptID {
		t.Fatalf("replay receipt %s does not match original %s", replay.ReceiptID, first.ReceiptID)
	}
	if len(replay.AcceptedTargets) != 2 || replay.VotesRemaining != 1 {
		t.Fatalf("replay must rebuild the original outcome, got %+v", replay)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-ballot", httptransport.CastVotesRequest{
		Targets: []string{keys["https://img.example/delta.png"]},
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected conflict for reused key with a new ballot, got %v", err)
	}

	last, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-last", httptransport.CastVotesRequest{
		Targets: []string{keys["https://img.example/delta.png"]},
	})
	if err != nil {
		t.Fatalf("final vote failed: %v", err)
	}
	if last.VotesRemaining != 0 {
		t.Fatalf("expected exhausted budget, got %d", last.VotesRemaining)
	}

	_, err = module.Handler.CastVotesHandler(ctx, "alpha", "idem-over", httptransport.CastVotesRequest{
		Targets: []string{keys["https://img.example/original.png"]},
	})
	if !errors.Is(err, domainerrors.ErrVoteLimitExceeded) {
		t.Fatalf("expected capacity rejection after exhausting the budget, got %v", err)
	}
}

func TestPicPerfectVotingStatusTracksProgress(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo"})

	if _, err := module.Handler.CastVotesHandler(ctx, "alpha", "idem-partial", httptransport.CastVotesRequest{
		Targets: []string{"bravo", "HIDDEN_IMAGE"},
	}); err != nil {
		t.Fatalf("partial ballot failed: %v", err)
	}

	status, err := module.Handler.VotingStatusHandler(ctx)
	if err != nil {
		t.Fatalf("voting status failed: %v", err)
	}
	if status.AllVotesCast || status.CanTransitionToScoring {
		t.Fatalf("voting must stay open with unused budgets: %+v", status)
	}
	byTeam := make(map[string]httptransport.TeamVoteProgressDTO, len(status.Progress))
	for _, row := range status.Progress {
		byTeam[row.TeamName] = row
	}
	if row := byTeam["alpha"]; row.VotesUsed != 2 || row.VotesRemaining != 1 {
		t.Fatalf("unexpected alpha progress: %+v", row)
	}
	if row := byTeam["bravo"]; row.VotesUsed != 0 || row.VotesRemaining != 3 {
		t.Fatalf("unexpected bravo progress: %+v", row)
	}
}
