package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/adapters/memory"
	picperfectworkers "arcade/contexts/challenge-arcade/pic-perfect-service/application/workers"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
	httptransport "arcade/contexts/challenge-arcade/pic-perfect-service/transport/http"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now.UTC()
}

type recordingPublisher struct {
	failOn    string
	topics    []string
	published []ports.EventEnvelope
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.failOn != "" && event.EventType == p.failOn {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, topic)
	p.published = append(p.published, event)
	return nil
}

func TestPicPerfectOutboxRelayPublishesPendingEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	module := startedPicPerfectModule(t, []string{"alpha", "bravo"})
	submitPicPerfectImage(t, module, "alpha")

	publisher := &recordingPublisher{}
	relay := picperfectworkers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     fixedClock{now: now},
		BatchSize: 50,
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	types := map[string]bool{}
	for i, event := range publisher.published {
		types[event.EventType] = true
		if publisher.topics[i] != event.EventType {
			t.Fatalf("event %s published to topic %s", event.EventType, publisher.topics[i])
		}
		if event.EventID == "" || event.TraceID == "" {
			t.Fatalf("envelope %s is missing identifiers: %+v", event.EventType, event)
		}
		if event.SourceService != "pic-perfect-service" {
			t.Fatalf("unexpected source service %s", event.SourceService)
		}
		if event.SchemaVersion != 1 {
			t.Fatalf("unexpected schema version %d", event.SchemaVersion)
		}
		if event.PartitionKeyPath != "challenge_id" || event.PartitionKey != "pic-perfect" {
			t.Fatalf("unexpected partitioning on %s: %s=%s", event.EventType, event.PartitionKeyPath, event.PartitionKey)
		}
	}
	if !types["challenge.started"] || !types["challenge.hidden_image_set"] || !types["submission.received"] {
		t.Fatalf("expected lifecycle events in the relay batch, got %v", types)
	}

	pending, err := module.Store.ListPendingOutbox(ctx, 50)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected drained outbox, %d rows remain", len(pending))
	}

	publishedBefore := len(publisher.published)
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("idle relay run failed: %v", err)
	}
	if len(publisher.published) != publishedBefore {
		t.Fatalf("idle relay run republished rows")
	}
}

func TestPicPerfectOutboxRelayStopsOnPublishFailure(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	module := startedPicPerfectModule(t, []string{"alpha", "bravo"})
	submitPicPerfectImage(t, module, "alpha")

	pending, err := module.Store.ListPendingOutbox(ctx, 50)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) == 0 {
		t.Fatalf("expected pending outbox rows before the relay run")
	}

	publisher := &recordingPublisher{failOn: pending[0].EventType}
	relay := picperfectworkers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     fixedClock{now: now},
		BatchSize: 50,
	}
	if err := relay.RunOnce(ctx); err == nil {
		t.Fatalf("expected relay run to surface the publish failure")
	}
	if len(publisher.published) != 0 {
		t.Fatalf("relay must stop at the first failing row, published %d", len(publisher.published))
	}

	// Nothing was marked published, so a healthy retry drains everything.
	stillPending, err := module.Store.ListPendingOutbox(ctx, 50)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(stillPending) != len(pending) {
		t.Fatalf("failed relay run lost rows: %d before, %d after", len(pending), len(stillPending))
	}

	publisher.failOn = ""
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("retry relay run failed: %v", err)
	}
	drained, err := module.Store.ListPendingOutbox(ctx, 50)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(drained) != 0 {
		t.Fatalf("expected drained outbox after retry, %d rows remain", len(drained))
	}
}

func TestPicPerfectIdempotencyExpirerSweepsExpiredRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore(nil)

	if err := store.Put(ctx, ports.IdempotencyRecord{
		Key:         "stale-key",
		RequestHash: "hash-stale",
		Reference:   "ref-stale",
		ExpiresAt:   now.Add(-time.Hour),
	}); err != nil {
		t.Fatalf("seed stale record failed: %v", err)
	}
	if err := store.Put(ctx, ports.IdempotencyRecord{
		Key:         "live-key",
		RequestHash: "hash-live",
		Reference:   "ref-live",
		ExpiresAt:   now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed live record failed: %v", err)
	}

	expirer := picperfectworkers.IdempotencyExpirer{
		Idempotency: store,
		Clock:       fixedClock{now: now},
	}
	if err := expirer.RunOnce(ctx); err != nil {
		t.Fatalf("expirer run failed: %v", err)
	}

	leftovers, err := store.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if leftovers != 0 {
		t.Fatalf("expirer left %d expired records behind", leftovers)
	}
	if _, found, err := store.Get(ctx, "live-key", now); err != nil || !found {
		t.Fatalf("live record must survive the sweep: found=%v err=%v", found, err)
	}
	if _, found, err := store.Get(ctx, "stale-key", now); err != nil || found {
		t.Fatalf("stale record must be gone: found=%v err=%v", found, err)
	}
}

func TestPicPerfectFinalizeReportsScoringOutcome(t *testing.T) {
	ctx := context.Background()
	module := votingPicPerfectModule(t, []string{"alpha", "bravo", "charlie", "delta"})

	hidden := "https://img.example/original.png"
	ballots := map[string][]string{
		"alpha":   {"https://img.example/bravo.png", "https://img.example/charlie.png", hidden},
		"bravo":   {"https://img.example/alpha.png", "https://img.example/charlie.png", "https://img.example/delta.png"},
		"charlie": {"https://img.example/alpha.png", "https://img.example/bravo.png", hidden},
		"delta":   {"https://img.example/alpha.png", "https://img.example/bravo.png", "https://img.example/charlie.png"},
	}
	for team, urls := range ballots {
		castPicPerfectBallot(t, module, team, urls)
	}
	if _, err := module.Handler.TransitionStateHandler(ctx, httptransport.TransitionStateRequest{TargetState: "scoring"}); err != nil {
		t.Fatalf("transition to scoring failed: %v", err)
	}

	final, err := module.Handler.FinalizeChallengeHandler(ctx)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if final.ScoringError != "" {
		t.Fatalf("unexpected scoring error: %s", final.ScoringError)
	}
	if len(final.Items) != 4 {
		t.Fatalf("expected 4 finalized rows, got %d", len(final.Items))
	}
	if final.Items[0].TeamName != "alpha" || final.Items[0].TotalPoints != 19 {
		t.Fatalf("unexpected winner row: %+v", final.Items[0])
	}

	// Finalizing twice is rejected because complete to complete is not a
	// legal transition.
	if _, err := module.Handler.FinalizeChallengeHandler(ctx); err == nil {
		t.Fatalf("expected second finalize to be rejected")
	}
}
