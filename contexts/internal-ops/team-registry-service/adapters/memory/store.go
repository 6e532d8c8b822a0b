package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"arcade/contexts/internal-ops/team-registry-service/ports"
)

type Store struct {
	mu    sync.RWMutex
	teams map[string]ports.Team
}

func NewStore() *Store {
	return &Store{teams: make(map[string]ports.Team)}
}

// SetTeam seeds a roster entry directly, bypassing service validation.
func (s *Store) SetTeam(team ports.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team.TeamName = strings.TrimSpace(team.TeamName)
	s.teams[team.TeamName] = team
}

func (s *Store) SaveTeam(_ context.Context, team ports.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.TeamName] = team
	return nil
}

func (s *Store) GetTeam(_ context.Context, teamName string) (ports.Team, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, found := s.teams[teamName]
	return team, found, nil
}

func (s *Store) ListTeams(_ context.Context) ([]ports.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]ports.Team, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamName < teams[j].TeamName })
	return teams, nil
}

func (s *Store) DeleteTeam(_ context.Context, teamName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.teams[teamName]; !found {
		return false, nil
	}
	delete(s.teams, teamName)
	return true, nil
}

// ListTeamNames serves roster reads for challenge modules that only need
// the names.
func (s *Store) ListTeamNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.teams))
	for name := range s.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) TeamExists(_ context.Context, teamName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, found := s.teams[strings.TrimSpace(teamName)]
	return found, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
