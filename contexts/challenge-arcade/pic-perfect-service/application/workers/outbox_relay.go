package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// OutboxRelay publishes persisted outbox records to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce publishes a bounded batch of pending outbox rows and marks each row
// published only after broker publish succeeds. It stops on the first failure
// so the retry loop can reprocess remaining rows safely.
func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}
	logger.Info("pic perfect outbox relay cycle started",
		"event", "pic_perfect_outbox_relay_started",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "worker",
		"batch_size", limit,
	)

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("pic perfect outbox list failed",
			"event", "pic_perfect_outbox_list_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(pending) == 0 {
		logger.Debug("pic perfect outbox relay found no pending rows",
			"event", "pic_perfect_outbox_relay_noop",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "worker",
			"batch_size", limit,
		)
		return nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("pic perfect outbox decode failed",
				"event", "pic_perfect_outbox_decode_failed",
				"module", "challenge-arcade/pic-perfect-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("pic perfect outbox publish failed",
				"event", "pic_perfect_outbox_publish_failed",
				"module", "challenge-arcade/pic-perfect-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			logger.Error("pic perfect outbox mark published failed",
				"event", "pic_perfect_outbox_mark_published_failed",
				"module", "challenge-arcade/pic-perfect-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("pic perfect outbox relay cycle completed",
		"event", "pic_perfect_outbox_relay_completed",
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "worker",
		"published_count", len(pending),
	)
	return nil
}
