package memory

import (
	"context"
	"testing"
	"time"

	"arcade/contexts/internal-ops/team-registry-service/ports"
)

func TestStoreDirectoryViews(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	store.SetTeam(ports.Team{TeamName: "zulu", CreatedAt: createdAt})
	store.SetTeam(ports.Team{TeamName: " alpha ", CreatedAt: createdAt})

	names, err := store.ListTeamNames(ctx)
	if err != nil {
		t.Fatalf("list team names failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zulu" {
		t.Fatalf("expected sorted trimmed names, got %v", names)
	}

	teams, err := store.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 2 || teams[0].TeamName != "alpha" {
		t.Fatalf("expected alphabetic roster, got %+v", teams)
	}

	exists, err := store.TeamExists(ctx, " alpha ")
	if err != nil || !exists {
		t.Fatalf("expected trimmed lookup to find alpha: exists=%v err=%v", exists, err)
	}

	removed, err := store.DeleteTeam(ctx, "alpha")
	if err != nil || !removed {
		t.Fatalf("expected delete to report removal: removed=%v err=%v", removed, err)
	}
	removed, err = store.DeleteTeam(ctx, "alpha")
	if err != nil || removed {
		t.Fatalf("expected second delete to be a no-op: removed=%v err=%v", removed, err)
	}
}
