package messaging

import (
	"context"
	"log/slog"
	"sync"

	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

const inboxDepth = 128

// subscription is one consumer-group attachment to a topic.
type subscription struct {
	group string
	inbox chan ports.EventEnvelope
}

// Kafka is the broker seam used by the outbox relay and worker consumers.
// Delivery is in-process for now; broker addresses are carried so the
// external wiring can land without touching callers.
type Kafka struct {
	mu      sync.RWMutex
	topics  map[string][]*subscription
	brokers []string
	logger  *slog.Logger
}

func NewKafka(brokers []string, logger *slog.Logger) (*Kafka, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("event bus ready",
		"event", "bus_ready",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"broker_count", len(brokers),
	)
	return &Kafka{
		topics:  make(map[string][]*subscription),
		brokers: brokers,
		logger:  logger,
	}, nil
}

// Publish fans the event out to every subscription on topic. A full inbox
// drops the event for that subscriber rather than blocking the publisher.
func (k *Kafka) Publish(ctx context.Context, topic string, event ports.EventEnvelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k.mu.RLock()
	subs := append([]*subscription(nil), k.topics[topic]...)
	k.mu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		select {
		case sub.inbox <- event:
			delivered++
		default:
			k.logger.Warn("subscriber inbox full, event dropped",
				"event", "bus_publish_drop",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"consumer_group", sub.group,
				"event_id", event.EventID,
			)
		}
	}

	k.logger.Info("event published",
		"event", "bus_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
		"delivered", delivered,
	)
	return nil
}

// Subscribe attaches handler to topic under consumerGroup. The consumer
// stops and detaches when ctx is cancelled.
func (k *Kafka) Subscribe(
	ctx context.Context,
	topic string,
	consumerGroup string,
	handler func(context.Context, ports.EventEnvelope) error,
) error {
	sub := &subscription{
		group: consumerGroup,
		inbox: make(chan ports.EventEnvelope, inboxDepth),
	}

	k.mu.Lock()
	k.topics[topic] = append(k.topics[topic], sub)
	k.mu.Unlock()

	go k.consume(ctx, topic, sub, handler)
	return nil
}

func (k *Kafka) consume(
	ctx context.Context,
	topic string,
	sub *subscription,
	handler func(context.Context, ports.EventEnvelope) error,
) {
	defer k.detach(topic, sub)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-sub.inbox:
			if err := handler(ctx, event); err != nil {
				k.logger.Error("consumer handler failed",
					"event", "bus_consume_failed",
					"module", "internal/platform/messaging",
					"layer", "platform",
					"topic", topic,
					"consumer_group", sub.group,
					"event_id", event.EventID,
					"event_type", event.EventType,
					"error", err.Error(),
				)
			}
		}
	}
}

func (k *Kafka) detach(topic string, target *subscription) {
	k.mu.Lock()
	defer k.mu.Unlock()

	subs := k.topics[topic]
	kept := subs[:0]
	for _, sub := range subs {
		if sub != target {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(k.topics, topic)
		return
	}
	k.topics[topic] = kept
}
