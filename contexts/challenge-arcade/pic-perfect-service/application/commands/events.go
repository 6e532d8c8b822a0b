package commands

import (
	"encoding/json"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

func newChallengeEnvelope(
	eventID string,
	eventType string,
	challengeID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	// Command-side events are partitioned by challenge so consumers observe
	// one challenge's lifecycle in order.
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "pic-perfect-service",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "challenge_id",
		PartitionKey:     challengeID,
		Data:             payload,
	}, nil
}
