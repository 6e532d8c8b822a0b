package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	teamregistryservice "arcade/contexts/internal-ops/team-registry-service"
	registrymemory "arcade/contexts/internal-ops/team-registry-service/adapters/memory"
	registryerrors "arcade/contexts/internal-ops/team-registry-service/domain/errors"
	registryports "arcade/contexts/internal-ops/team-registry-service/ports"
	registrytransport "arcade/contexts/internal-ops/team-registry-service/transport/http"
)

func TestTeamRegistryLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := registrymemory.NewStore()
	module := teamregistryservice.NewModule(teamregistryservice.Dependencies{
		Repository: store,
		Clock:      fixedClock{now: now},
	})

	created, err := module.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{
		TeamName: "alpha",
		Members:  []string{"ana", " bo ", ""},
	})
	if err != nil {
		t.Fatalf("register alpha failed: %v", err)
	}
	if created.Status != "success" || created.Data.TeamName != "alpha" {
		t.Fatalf("unexpected register response: %+v", created)
	}
	if created.Data.CreatedAt != now.Format(time.RFC3339) {
		t.Fatalf("unexpected created_at: %s", created.Data.CreatedAt)
	}
	if len(created.Data.Members) != 2 || created.Data.Members[1] != "bo" {
		t.Fatalf("expected trimmed members, got %v", created.Data.Members)
	}

	if _, err := module.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{TeamName: "bravo"}); err != nil {
		t.Fatalf("register bravo failed: %v", err)
	}

	_, err = module.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{TeamName: "   "})
	if !errors.Is(err, registryerrors.ErrInvalidRequest) {
		t.Fatalf("expected blank name rejection, got %v", err)
	}

	list, err := module.Handler.ListTeamsHandler(ctx)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(list.Data.Items) != 2 || list.Data.Items[0].TeamName != "alpha" || list.Data.Items[1].TeamName != "bravo" {
		t.Fatalf("expected sorted roster, got %+v", list.Data.Items)
	}

	fetched, err := module.Handler.GetTeamHandler(ctx, "alpha")
	if err != nil {
		t.Fatalf("get alpha failed: %v", err)
	}
	if len(fetched.Data.Members) != 2 {
		t.Fatalf("unexpected alpha members: %v", fetched.Data.Members)
	}

	_, err = module.Handler.GetTeamHandler(ctx, "ghost")
	if !errors.Is(err, registryerrors.ErrTeamNotFound) {
		t.Fatalf("expected not found for ghost, got %v", err)
	}

	removed, err := module.Handler.RemoveTeamHandler(ctx, "bravo")
	if err != nil {
		t.Fatalf("remove bravo failed: %v", err)
	}
	if !removed.Data.Removed || removed.Data.TeamName != "bravo" {
		t.Fatalf("unexpected remove response: %+v", removed)
	}

	_, err = module.Handler.RemoveTeamHandler(ctx, "bravo")
	if !errors.Is(err, registryerrors.ErrTeamNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}

	list, err = module.Handler.ListTeamsHandler(ctx)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(list.Data.Items) != 1 {
		t.Fatalf("expected a single remaining team, got %d", len(list.Data.Items))
	}
}

// Registering an existing team must not fail or reset its creation time; it
// refreshes the activity marker and replaces members only when new ones are
// sent.
func TestTeamRegistryReRegisterRefreshesActivity(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	refreshedAt := registeredAt.Add(48 * time.Hour)
	store := registrymemory.NewStore()

	first := teamregistryservice.NewModule(teamregistryservice.Dependencies{
		Repository: store,
		Clock:      fixedClock{now: registeredAt},
	})
	if _, err := first.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{
		TeamName: "alpha",
		Members:  []string{"ana"},
	}); err != nil {
		t.Fatalf("initial register failed: %v", err)
	}

	later := teamregistryservice.NewModule(teamregistryservice.Dependencies{
		Repository: store,
		Clock:      fixedClock{now: refreshedAt},
	})
	refreshed, err := later.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{TeamName: "alpha"})
	if err != nil {
		t.Fatalf("re-register failed: %v", err)
	}
	if refreshed.Data.CreatedAt != registeredAt.Format(time.RFC3339) {
		t.Fatalf("re-register must keep created_at, got %s", refreshed.Data.CreatedAt)
	}
	if refreshed.Data.LastActiveAt != refreshedAt.Format(time.RFC3339) {
		t.Fatalf("expected refreshed last_active_at, got %s", refreshed.Data.LastActiveAt)
	}
	if len(refreshed.Data.Members) != 1 || refreshed.Data.Members[0] != "ana" {
		t.Fatalf("empty member list must keep the roster, got %v", refreshed.Data.Members)
	}

	replaced, err := later.Handler.RegisterTeamHandler(ctx, registrytransport.RegisterTeamRequest{
		TeamName: "alpha",
		Members:  []string{"cleo", "dana"},
	})
	if err != nil {
		t.Fatalf("member replacement failed: %v", err)
	}
	if len(replaced.Data.Members) != 2 || replaced.Data.Members[0] != "cleo" {
		t.Fatalf("expected replaced members, got %v", replaced.Data.Members)
	}
}

// The registry roster doubles as the challenge team directory.
func TestTeamRegistryDirectoryReads(t *testing.T) {
	ctx := context.Background()
	module := teamregistryservice.NewInMemoryModule(nil)
	module.Store.SetTeam(registryports.Team{TeamName: "zulu", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)})
	module.Store.SetTeam(registryports.Team{TeamName: " alpha ", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)})

	names, err := module.Store.ListTeamNames(ctx)
	if err != nil {
		t.Fatalf("list team names failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zulu" {
		t.Fatalf("expected sorted trimmed names, got %v", names)
	}
	exists, err := module.Store.TeamExists(ctx, " alpha ")
	if err != nil || !exists {
		t.Fatalf("expected trimmed lookup to find alpha: exists=%v err=%v", exists, err)
	}
	exists, err = module.Store.TeamExists(ctx, "ghost")
	if err != nil || exists {
		t.Fatalf("expected ghost to be absent: exists=%v err=%v", exists, err)
	}
}
