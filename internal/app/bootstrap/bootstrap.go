package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	picperfectservice "arcade/contexts/challenge-arcade/pic-perfect-service"
	picperfectpostgres "arcade/contexts/challenge-arcade/pic-perfect-service/adapters/postgres"
	workerapp "arcade/contexts/challenge-arcade/pic-perfect-service/application/workers"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"
	teamregistryservice "arcade/contexts/internal-ops/team-registry-service"
	registrypostgres "arcade/contexts/internal-ops/team-registry-service/adapters/postgres"
	"arcade/internal/platform/config"
	"arcade/internal/platform/db"
	"arcade/internal/platform/httpserver"
	"arcade/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	bus          *messaging.Kafka
	outboxRelay  workerapp.OutboxRelay
	expirer      workerapp.IdempotencyExpirer
	relayEnabled bool
	sweepEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

const auditConsumerGroup = "arcade-worker-audit"

// auditTopics lists every engine event type the relay can ship.
// The worker tails them all.
var auditTopics = []string{
	"challenge.started",
	"challenge.hidden_image_set",
	"challenge.state_changed",
	"submission.received",
	"vote.cast",
	"challenge.scores_calculated",
	"challenge.finalized",
	"challenge.reset",
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(context.Background(), cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := picperfectpostgres.NewRepository(pg.DB, logger)
	picPerfect := picperfectservice.NewModule(picperfectservice.Dependencies{
		Challenges:     repo,
		Submissions:    repo,
		Votes:          repo,
		Leaderboard:    repo,
		Teams:          repo,
		Idempotency:    repo,
		Outbox:         repo,
		Clock:          picperfectpostgres.SystemClock{},
		IDGen:          picperfectpostgres.UUIDGenerator{},
		ChallengeID:    cfg.ChallengeID,
		VoteCap:        cfg.VoteCap,
		IdempotencyTTL: cfg.IdempotencyTTL,
		Logger:         logger,
	})

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	teamRegistry := teamregistryservice.NewModule(teamregistryservice.Dependencies{
		Repository: registryRepo,
		Clock:      registrypostgres.SystemClock{},
		Logger:     logger,
	})

	server := httpserver.New(picPerfect, teamRegistry, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(context.Background(), cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	repo := picperfectpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		bus:      kafka,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: kafka,
			Clock:     picperfectpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		expirer: workerapp.IdempotencyExpirer{
			Idempotency: repo,
			Clock:       picperfectpostgres.SystemClock{},
			Logger:      logger,
		},
		relayEnabled: cfg.EnableOutboxRelay,
		sweepEnabled: cfg.EnableIdempotencyExpirer,
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	for _, topic := range auditTopics {
		if err := w.bus.Subscribe(ctx, topic, auditConsumerGroup, w.observeEvent); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"outbox_relay_enabled", w.relayEnabled,
		"idempotency_expirer_enabled", w.sweepEnabled,
	)

	for {
		if w.sweepEnabled {
			if err := w.expirer.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) observeEvent(_ context.Context, event ports.EventEnvelope) error {
	w.logger.Info("challenge event relayed",
		"event", "worker_event_audit",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"event_type", event.EventType,
		"event_id", event.EventID,
		"partition_key", event.PartitionKey,
	)
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
