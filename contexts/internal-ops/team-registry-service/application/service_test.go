package application

import (
	"context"
	"testing"

	"arcade/contexts/internal-ops/team-registry-service/adapters/memory"
	domainerrors "arcade/contexts/internal-ops/team-registry-service/domain/errors"
)

func TestRegisterTeamIdempotentByName(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	first, err := service.RegisterTeam(context.Background(), RegisterTeamInput{
		TeamName: "alpha",
		Members:  []string{"ana"},
	})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if first.LastActiveAt != nil {
		t.Fatalf("fresh team must not carry a last-active marker")
	}

	second, err := service.RegisterTeam(context.Background(), RegisterTeamInput{TeamName: "alpha"})
	if err != nil {
		t.Fatalf("re-register failed: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("re-register must keep created_at: %v vs %v", second.CreatedAt, first.CreatedAt)
	}
	if second.LastActiveAt == nil {
		t.Fatalf("re-register must refresh the last-active marker")
	}
	if len(second.Members) != 1 || second.Members[0] != "ana" {
		t.Fatalf("empty member list must keep the roster, got %v", second.Members)
	}

	third, err := service.RegisterTeam(context.Background(), RegisterTeamInput{
		TeamName: "alpha",
		Members:  []string{"cleo", " dana "},
	})
	if err != nil {
		t.Fatalf("member replacement failed: %v", err)
	}
	if len(third.Members) != 2 || third.Members[1] != "dana" {
		t.Fatalf("expected replaced trimmed members, got %v", third.Members)
	}
}

func TestRegisterTeamValidatesName(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	_, err := service.RegisterTeam(context.Background(), RegisterTeamInput{TeamName: "   "})
	if err != domainerrors.ErrInvalidRequest {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestRemoveTeamLifecycle(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	if _, err := service.RegisterTeam(context.Background(), RegisterTeamInput{TeamName: "bravo"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	removed, err := service.RemoveTeam(context.Background(), "bravo")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.TeamName != "bravo" {
		t.Fatalf("unexpected removed team: %+v", removed)
	}

	if _, err := service.RemoveTeam(context.Background(), "bravo"); err != domainerrors.ErrTeamNotFound {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
	if _, err := service.GetTeam(context.Background(), "bravo"); err != domainerrors.ErrTeamNotFound {
		t.Fatalf("expected not found after removal, got %v", err)
	}
}
