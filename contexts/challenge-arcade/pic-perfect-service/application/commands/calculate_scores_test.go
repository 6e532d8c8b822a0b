package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/adapters/memory"
	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now.UTC()
}

// scoredLedgerFixture seeds a challenge in the given state with three team
// submissions, the hidden image, and a settled ballot set: alpha voted for
// bravo, charlie, and the hidden image; bravo and charlie each voted for
// alpha.
func scoredLedgerFixture(t *testing.T, state entities.ChallengeState) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore([]string{"alpha", "bravo", "charlie"})

	store.SetChallenge(entities.Challenge{
		ChallengeID: entities.DefaultChallengeID,
		State:       state,
		StartTime:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Metadata:    entities.ChallengeMetadata{HiddenImageSet: true},
	})
	for _, team := range []string{"alpha", "bravo", "charlie"} {
		store.SetSubmission(entities.Submission{
			ChallengeID: entities.DefaultChallengeID,
			TeamName:    team,
			ImageURL:    "https://img.example/" + team + ".png",
			SubmittedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		})
	}
	store.SetSubmission(entities.Submission{
		ChallengeID: entities.DefaultChallengeID,
		TeamName:    entities.HiddenTeamKey,
		ImageURL:    "https://img.example/original.png",
		Hidden:      true,
		SubmittedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	})

	ballots := []struct {
		voter   string
		targets []string
	}{
		{voter: "alpha", targets: []string{"bravo", "charlie", entities.HiddenTeamKey}},
		{voter: "bravo", targets: []string{"alpha"}},
		{voter: "charlie", targets: []string{"alpha"}},
	}
	for _, ballot := range ballots {
		votes := make([]entities.VoteRecord, 0, len(ballot.targets))
		for _, target := range ballot.targets {
			votes = append(votes, entities.VoteRecord{
				ChallengeID: entities.DefaultChallengeID,
				VoterTeam:   ballot.voter,
				TargetTeam:  target,
				CastAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			})
		}
		if err := store.AppendVotes(ctx, entities.DefaultChallengeID, ballot.voter, votes, entities.DefaultVoteCap); err != nil {
			t.Fatalf("seed ballot for %s: %v", ballot.voter, err)
		}
	}
	return store
}

func scoringUseCase(store *memory.Store) CalculateScoresUseCase {
	return CalculateScoresUseCase{
		Challenges:  store,
		Submissions: store,
		Leaderboard: store,
		Clock:       fixedClock{now: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)},
	}
}

func TestCalculateScoresAppliesFormulaAndRankOrder(t *testing.T) {
	store := scoredLedgerFixture(t, entities.StateScoring)
	uc := scoringUseCase(store)

	result, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected scoring to succeed, got %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 scored rows without the hidden entry, got %d", len(result.Rows))
	}

	top := result.Rows[0]
	if top.TeamName != "alpha" || top.DeceptionPoints != 6 || top.DiscoveryPoints != 10 || top.TotalPoints != 16 {
		t.Fatalf("unexpected top row: %+v", top)
	}
	if !top.VotedForHidden || top.VotesReceived != 2 {
		t.Fatalf("expected alpha credited for finding the hidden image: %+v", top)
	}
	if result.Rows[1].TeamName != "bravo" || result.Rows[2].TeamName != "charlie" {
		t.Fatalf("expected tied teams ordered by name, got %s then %s",
			result.Rows[1].TeamName, result.Rows[2].TeamName)
	}
	for _, row := range result.Rows[1:] {
		if row.TotalPoints != 3 || row.DiscoveryPoints != 0 || row.VotedForHidden {
			t.Fatalf("unexpected tied row: %+v", row)
		}
		if row.TotalPoints != row.DeceptionPoints+row.DiscoveryPoints {
			t.Fatalf("score fields inconsistent: %+v", row)
		}
	}

	persisted, found, err := store.GetLeaderboardEntry(context.Background(), entities.DefaultChallengeID, "alpha")
	if err != nil || !found {
		t.Fatalf("expected persisted row for alpha, found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(persisted, top) {
		t.Fatalf("persisted row diverges from returned row: %+v vs %+v", persisted, top)
	}
}

func TestCalculateScoresIsIdempotentForUnchangedLedger(t *testing.T) {
	store := scoredLedgerFixture(t, entities.StateScoring)
	uc := scoringUseCase(store)

	first, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected first run to succeed, got %v", err)
	}
	second, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected second run to succeed, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results across runs: %+v vs %+v", first, second)
	}
}

func TestCalculateScoresRequiresScoringPhase(t *testing.T) {
	store := scoredLedgerFixture(t, entities.StateVoting)
	uc := scoringUseCase(store)

	if _, err := uc.Execute(context.Background()); !errors.Is(err, domainerrors.ErrInvalidState) {
		t.Fatalf("expected invalid state during voting, got %v", err)
	}
}

func TestCalculateScoresAllowsRerunAfterCompletion(t *testing.T) {
	store := scoredLedgerFixture(t, entities.StateComplete)
	uc := scoringUseCase(store)

	result, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected rerun on a completed challenge to succeed, got %v", err)
	}
	if result.Rows[0].TotalPoints != 16 {
		t.Fatalf("expected recomputed winner total 16, got %d", result.Rows[0].TotalPoints)
	}
}

func TestCalculateScoresWithoutChallengeRecord(t *testing.T) {
	store := memory.NewStore(nil)
	uc := scoringUseCase(store)

	if _, err := uc.Execute(context.Background()); !errors.Is(err, domainerrors.ErrChallengeNotInitialized) {
		t.Fatalf("expected not initialized, got %v", err)
	}
}
