package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	ChallengeID        string
	VoteCap            int
	IdempotencyTTL     time.Duration
	WorkerPollInterval time.Duration

	EnableOutboxRelay        bool
	EnableIdempotencyExpirer bool
}

func Load() (Config, error) {
	// A missing .env is fine; containerized runs inject the environment.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "arcade"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	challengeID := strings.TrimSpace(os.Getenv("CHALLENGE_ID"))
	if challengeID == "" {
		challengeID = "pic-perfect"
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,

		ChallengeID:        challengeID,
		VoteCap:            envInt("VOTE_CAP", 3),
		IdempotencyTTL:     time.Duration(envInt("IDEMPOTENCY_TTL_HOURS", 168)) * time.Hour,
		WorkerPollInterval: time.Duration(envInt("WORKER_POLL_INTERVAL_MS", 2000)) * time.Millisecond,

		EnableOutboxRelay:        envBool("ENABLE_OUTBOX_RELAY", true),
		EnableIdempotencyExpirer: envBool("ENABLE_IDEMPOTENCY_EXPIRER", true),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
