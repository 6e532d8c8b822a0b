package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

func voteFixture(voter, target string) entities.VoteRecord {
	return entities.VoteRecord{
		VoteID:      "vote-" + voter + "-" + target,
		ChallengeID: entities.DefaultChallengeID,
		VoterTeam:   voter,
		TargetTeam:  target,
		ReceiptID:   "receipt-" + voter,
		CastAt:      time.Now().UTC(),
	}
}

func TestAppendVotesEnforcesUniquenessAndCap(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	err := store.AppendVotes(ctx, entities.DefaultChallengeID, "alpha", []entities.VoteRecord{
		voteFixture("alpha", "bravo"),
		voteFixture("alpha", "charlie"),
	}, 3)
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}

	err = store.AppendVotes(ctx, entities.DefaultChallengeID, "alpha", []entities.VoteRecord{
		voteFixture("alpha", "bravo"),
	}, 3)
	if !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	err = store.AppendVotes(ctx, entities.DefaultChallengeID, "alpha", []entities.VoteRecord{
		voteFixture("alpha", "delta"),
		voteFixture("alpha", "echo"),
	}, 3)
	if !errors.Is(err, domainerrors.ErrVoteLimitExceeded) {
		t.Fatalf("expected cap rejection, got %v", err)
	}

	votes, err := store.ListVotesByVoter(ctx, entities.DefaultChallengeID, "alpha")
	if err != nil {
		t.Fatalf("list votes failed: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("rejected batches must not change the ledger, got %d votes", len(votes))
	}

	err = store.AppendVotes(ctx, entities.DefaultChallengeID, "alpha", []entities.VoteRecord{
		voteFixture("alpha", "delta"),
	}, 3)
	if err != nil {
		t.Fatalf("final vote failed: %v", err)
	}

	// A batch that repeats a target inside itself is rejected whole.
	err = store.AppendVotes(ctx, entities.DefaultChallengeID, "bravo", []entities.VoteRecord{
		voteFixture("bravo", "alpha"),
		voteFixture("bravo", "alpha"),
	}, 3)
	if !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected batch duplicate rejection, got %v", err)
	}
	votes, err = store.ListVotesByVoter(ctx, entities.DefaultChallengeID, "bravo")
	if err != nil {
		t.Fatalf("list votes failed: %v", err)
	}
	if len(votes) != 0 {
		t.Fatalf("rejected batch leaked %d votes", len(votes))
	}
}

func TestSubmissionReadsHydrateVoteSetsFromLedger(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	store.SetSubmission(entities.Submission{
		ChallengeID: entities.DefaultChallengeID,
		TeamName:    "alpha",
		ImageURL:    "https://img.example/alpha.png",
		// Stored vote sets are ignored; the ledger is the only source.
		VotesGiven: []string{"stale"},
	})
	store.SetSubmission(entities.Submission{
		ChallengeID: entities.DefaultChallengeID,
		TeamName:    "bravo",
		ImageURL:    "https://img.example/bravo.png",
	})

	if err := store.AppendVotes(ctx, entities.DefaultChallengeID, "alpha", []entities.VoteRecord{
		voteFixture("alpha", "bravo"),
	}, 3); err != nil {
		t.Fatalf("alpha votes failed: %v", err)
	}
	if err := store.AppendVotes(ctx, entities.DefaultChallengeID, "bravo", []entities.VoteRecord{
		voteFixture("bravo", "alpha"),
		voteFixture("bravo", entities.HiddenTeamKey),
	}, 3); err != nil {
		t.Fatalf("bravo votes failed: %v", err)
	}

	alpha, found, err := store.GetSubmission(ctx, entities.DefaultChallengeID, "alpha")
	if err != nil || !found {
		t.Fatalf("get alpha failed: found=%v err=%v", found, err)
	}
	if len(alpha.VotesGiven) != 1 || alpha.VotesGiven[0] != "bravo" {
		t.Fatalf("unexpected alpha votes given: %v", alpha.VotesGiven)
	}
	if len(alpha.VotesReceived) != 1 || alpha.VotesReceived[0] != "bravo" {
		t.Fatalf("unexpected alpha votes received: %v", alpha.VotesReceived)
	}

	bravo, found, err := store.GetSubmission(ctx, entities.DefaultChallengeID, "bravo")
	if err != nil || !found {
		t.Fatalf("get bravo failed: found=%v err=%v", found, err)
	}
	if len(bravo.VotesGiven) != 2 || bravo.VotesGiven[0] != entities.HiddenTeamKey || bravo.VotesGiven[1] != "alpha" {
		t.Fatalf("expected sorted votes given, got %v", bravo.VotesGiven)
	}
	if bravo.VotesUsed() != 2 || !bravo.HasVotedFor(entities.HiddenTeamKey) {
		t.Fatalf("unexpected bravo ledger view: %+v", bravo)
	}
}

func TestAppendOutboxIsIdempotentByEventID(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	occurredAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	envelope := ports.EventEnvelope{
		EventID:          "event-1",
		EventType:        "challenge.started",
		OccurredAt:       occurredAt,
		SourceService:    "pic-perfect-service",
		TraceID:          "event-1",
		SchemaVersion:    1,
		PartitionKeyPath: "challenge_id",
		PartitionKey:     entities.DefaultChallengeID,
		Data:             json.RawMessage(`{"challenge_id":"pic-perfect"}`),
	}
	if err := store.AppendOutbox(ctx, envelope); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := store.AppendOutbox(ctx, envelope); err != nil {
		t.Fatalf("identical replay must be accepted: %v", err)
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected a single outbox row, got %d", len(pending))
	}

	altered := envelope
	altered.Data = json.RawMessage(`{"challenge_id":"other"}`)
	if err := store.AppendOutbox(ctx, altered); err != domainerrors.ErrConflict {
		t.Fatalf("expected conflict for reused event id, got %v", err)
	}

	if err := store.MarkOutboxPublished(ctx, "event-1", occurredAt); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("published row still listed as pending")
	}
}
