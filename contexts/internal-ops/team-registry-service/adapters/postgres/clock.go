package postgres

import (
	"time"

	"arcade/contexts/internal-ops/team-registry-service/ports"
)

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.Clock = SystemClock{}
