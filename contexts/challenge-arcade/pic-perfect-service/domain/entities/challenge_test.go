package entities

import "testing"

func TestTransitionSpecCoversEveryLegalPair(t *testing.T) {
	cases := []struct {
		from  ChallengeState
		to    ChallengeState
		guard TransitionGuard
	}{
		{StateLocked, StateSubmission, GuardNone},
		{StateSubmission, StateVoting, GuardAllTeamsSubmitted},
		{StateSubmission, StateLocked, GuardNone},
		{StateVoting, StateScoring, GuardAllVotesCast},
		{StateVoting, StateLocked, GuardNone},
		{StateScoring, StateComplete, GuardNone},
		{StateScoring, StateLocked, GuardNone},
		{StateComplete, StateLocked, GuardNone},
	}
	for _, tc := range cases {
		guard, ok := TransitionSpec(tc.from, tc.to)
		if !ok {
			t.Fatalf("expected %s to %s to be legal", tc.from, tc.to)
		}
		if guard != tc.guard {
			t.Fatalf("expected guard %q for %s to %s, got %q", tc.guard, tc.from, tc.to, guard)
		}
	}
}

func TestTransitionSpecRejectsEverythingOffTheTable(t *testing.T) {
	legal := map[[2]ChallengeState]bool{
		{StateLocked, StateSubmission}: true,
		{StateSubmission, StateVoting}: true,
		{StateSubmission, StateLocked}: true,
		{StateVoting, StateScoring}:    true,
		{StateVoting, StateLocked}:     true,
		{StateScoring, StateComplete}:  true,
		{StateScoring, StateLocked}:    true,
		{StateComplete, StateLocked}:   true,
	}
	states := []ChallengeState{StateLocked, StateSubmission, StateVoting, StateScoring, StateComplete}
	for _, from := range states {
		for _, to := range states {
			_, ok := TransitionSpec(from, to)
			if ok != legal[[2]ChallengeState{from, to}] {
				t.Fatalf("transition %s to %s: legal=%v, want %v", from, to, ok, legal[[2]ChallengeState{from, to}])
			}
		}
	}
}

func TestParseChallengeStateNormalizesInput(t *testing.T) {
	state, ok := ParseChallengeState("  VOTING ")
	if !ok || state != StateVoting {
		t.Fatalf("expected voting, got %q ok=%v", state, ok)
	}
	if _, ok := ParseChallengeState("sideways"); ok {
		t.Fatalf("expected unknown state to be rejected")
	}
	if _, ok := ParseChallengeState(""); ok {
		t.Fatalf("expected empty state to be rejected")
	}
}
