package workers

import (
	"context"
	"log/slog"
	"time"

	application "arcade/contexts/challenge-arcade/pic-perfect-service/application"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
)

// IdempotencyExpirer sweeps idempotency records that crossed expires_at.
type IdempotencyExpirer struct {
	Idempotency ports.IdempotencyStore
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (e IdempotencyExpirer) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(e.Logger)
	now := time.Now().UTC()
	if e.Clock != nil {
		now = e.Clock.Now().UTC()
	}

	removed, err := e.Idempotency.DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("idempotency expiry sweep failed",
			"event", "pic_perfect_idempotency_expiry_failed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if removed > 0 {
		logger.Info("idempotency expiry sweep completed",
			"event", "pic_perfect_idempotency_expiry_completed",
			"module", "challenge-arcade/pic-perfect-service",
			"layer", "worker",
			"removed_count", removed,
		)
	}
	return nil
}
