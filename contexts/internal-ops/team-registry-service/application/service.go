package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "arcade/contexts/internal-ops/team-registry-service/domain/errors"
	"arcade/contexts/internal-ops/team-registry-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

type RegisterTeamInput struct {
	TeamName string
	Members  []string
}

// RegisterTeam is idempotent by team name: registering an existing team
// refreshes its last-active marker instead of failing, and replaces the
// member list only when the request carries one.
func (s Service) RegisterTeam(ctx context.Context, input RegisterTeamInput) (ports.Team, error) {
	name := strings.TrimSpace(input.TeamName)
	if name == "" {
		return ports.Team{}, domainerrors.ErrInvalidRequest
	}

	now := s.now()
	existing, found, err := s.Repo.GetTeam(ctx, name)
	if err != nil {
		return ports.Team{}, err
	}
	if found {
		existing.LastActiveAt = &now
		if len(input.Members) > 0 {
			existing.Members = normalizeMembers(input.Members)
		}
		if err := s.Repo.SaveTeam(ctx, existing); err != nil {
			return ports.Team{}, err
		}
		return existing, nil
	}

	team := ports.Team{
		TeamName:  name,
		Members:   normalizeMembers(input.Members),
		CreatedAt: now,
	}
	if err := s.Repo.SaveTeam(ctx, team); err != nil {
		return ports.Team{}, err
	}

	resolveLogger(s.Logger).Info("team registered",
		"event", "team_registry_team_registered",
		"module", "internal-ops/team-registry-service",
		"layer", "application",
		"team_name", name,
		"member_count", len(team.Members),
	)
	return team, nil
}

func (s Service) GetTeam(ctx context.Context, teamName string) (ports.Team, error) {
	name := strings.TrimSpace(teamName)
	if name == "" {
		return ports.Team{}, domainerrors.ErrInvalidRequest
	}
	team, found, err := s.Repo.GetTeam(ctx, name)
	if err != nil {
		return ports.Team{}, err
	}
	if !found {
		return ports.Team{}, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

func (s Service) ListTeams(ctx context.Context) ([]ports.Team, error) {
	return s.Repo.ListTeams(ctx)
}

func (s Service) RemoveTeam(ctx context.Context, teamName string) (ports.Team, error) {
	name := strings.TrimSpace(teamName)
	if name == "" {
		return ports.Team{}, domainerrors.ErrInvalidRequest
	}
	team, found, err := s.Repo.GetTeam(ctx, name)
	if err != nil {
		return ports.Team{}, err
	}
	if !found {
		return ports.Team{}, domainerrors.ErrTeamNotFound
	}
	removed, err := s.Repo.DeleteTeam(ctx, name)
	if err != nil {
		return ports.Team{}, err
	}
	if !removed {
		return ports.Team{}, domainerrors.ErrTeamNotFound
	}

	resolveLogger(s.Logger).Info("team removed",
		"event", "team_registry_team_removed",
		"module", "internal-ops/team-registry-service",
		"layer", "application",
		"team_name", name,
	)
	return team, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func normalizeMembers(members []string) []string {
	out := make([]string, 0, len(members))
	for _, member := range members {
		trimmed := strings.TrimSpace(member)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
