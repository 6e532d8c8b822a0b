package application

import (
	"sort"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
)

// TeamVoteProgress is one non-hidden submitter's vote usage.
type TeamVoteProgress struct {
	TeamName       string
	VotesUsed      int
	VotesRemaining int
}

// Census is a point-in-time summary of registry and ledger coverage. The
// transition guards and the admin status queries both read from it so they
// cannot drift apart.
type Census struct {
	RegisteredTeams []string
	SubmittedTeams  []string
	PendingTeams    []string
	HiddenImageSet  bool
	VoteProgress    []TeamVoteProgress
}

// BuildCensus derives coverage from the registered roster and the hydrated
// submissions of one challenge. capLimit below 1 falls back to the default
// vote cap.
func BuildCensus(registered []string, submissions []entities.Submission, capLimit int) Census {
	if capLimit < 1 {
		capLimit = entities.DefaultVoteCap
	}

	census := Census{
		RegisteredTeams: append([]string(nil), registered...),
	}
	sort.Strings(census.RegisteredTeams)

	submitted := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		if sub.Hidden {
			census.HiddenImageSet = true
			continue
		}
		submitted[sub.TeamName] = true
		census.SubmittedTeams = append(census.SubmittedTeams, sub.TeamName)
		remaining := capLimit - sub.VotesUsed()
		if remaining < 0 {
			remaining = 0
		}
		census.VoteProgress = append(census.VoteProgress, TeamVoteProgress{
			TeamName:       sub.TeamName,
			VotesUsed:      sub.VotesUsed(),
			VotesRemaining: remaining,
		})
	}
	sort.Strings(census.SubmittedTeams)
	sort.Slice(census.VoteProgress, func(i, j int) bool {
		return census.VoteProgress[i].TeamName < census.VoteProgress[j].TeamName
	})

	for _, team := range census.RegisteredTeams {
		if !submitted[team] {
			census.PendingTeams = append(census.PendingTeams, team)
		}
	}
	return census
}

// CanTransitionToVoting holds when every registered team has a non-hidden
// submission and the hidden image exists. An empty roster never qualifies.
func (c Census) CanTransitionToVoting() bool {
	if len(c.RegisteredTeams) == 0 || !c.HiddenImageSet {
		return false
	}
	return len(c.PendingTeams) == 0
}

// CanTransitionToScoring holds when every submitting team has exhausted its
// vote cap. Zero participating teams never qualify.
func (c Census) CanTransitionToScoring() bool {
	if len(c.VoteProgress) == 0 {
		return false
	}
	for _, progress := range c.VoteProgress {
		if progress.VotesRemaining > 0 {
			return false
		}
	}
	return true
}
