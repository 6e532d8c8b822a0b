package entities

import "time"

// HiddenTeamKey is the reserved submission identifier for the concealed
// original image. No real team may submit or vote under it.
const HiddenTeamKey = "HIDDEN_IMAGE"

// DefaultVoteCap bounds how many distinct targets a team may vote for in one
// challenge unless the deployment overrides it.
const DefaultVoteCap = 3

// Submission is one team's gallery entry. VotesReceived and VotesGiven are
// hydrated from the vote ledger on read; they are never stored on the record
// itself.
type Submission struct {
	ChallengeID   string
	TeamName      string
	ImageURL      string
	Prompt        string
	Hidden        bool
	SubmittedAt   time.Time
	VotesReceived []string
	VotesGiven    []string
}

// HasVotedFor reports whether this submission's team already voted for the
// given target.
func (s Submission) HasVotedFor(target string) bool {
	for _, voted := range s.VotesGiven {
		if voted == target {
			return true
		}
	}
	return false
}

// VotesUsed is the number of distinct targets the team has voted for.
func (s Submission) VotesUsed() int {
	return len(s.VotesGiven)
}
