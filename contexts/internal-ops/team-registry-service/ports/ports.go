package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Team is one competing crew in the arcade roster. TeamName is the natural
// key; downstream challenge modules key submissions and votes on it.
type Team struct {
	TeamName     string
	Members      []string
	CreatedAt    time.Time
	LastActiveAt *time.Time
}

type Repository interface {
	SaveTeam(ctx context.Context, team Team) error
	GetTeam(ctx context.Context, teamName string) (Team, bool, error)
	ListTeams(ctx context.Context) ([]Team, error)
	DeleteTeam(ctx context.Context, teamName string) (bool, error)
}
