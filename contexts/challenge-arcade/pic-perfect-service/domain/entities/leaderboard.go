package entities

import (
	"sort"
	"time"
)

const (
	// PointsPerVoteReceived is credited for every vote a team's image draws.
	PointsPerVoteReceived = 3
	// PointsForFindingHidden is credited once for voting the hidden image.
	PointsForFindingHidden = 10
)

// LeaderboardEntry is the scored row for one team. Score fields are always
// overwritten as a unit by the scoring pass, never patched incrementally, so
// TotalPoints == DeceptionPoints + DiscoveryPoints holds after every write.
type LeaderboardEntry struct {
	ChallengeID     string
	TeamName        string
	ImageURL        string
	DeceptionPoints int
	DiscoveryPoints int
	TotalPoints     int
	VotesReceived   int
	VotedForHidden  bool
	UpdatedAt       time.Time
}

// ScoreSubmission computes the scored row for a non-hidden submission from
// its hydrated vote sets.
func ScoreSubmission(sub Submission) LeaderboardEntry {
	deception := len(sub.VotesReceived) * PointsPerVoteReceived
	discovery := 0
	votedForHidden := sub.HasVotedFor(HiddenTeamKey)
	if votedForHidden {
		discovery = PointsForFindingHidden
	}
	return LeaderboardEntry{
		ChallengeID:     sub.ChallengeID,
		TeamName:        sub.TeamName,
		ImageURL:        sub.ImageURL,
		DeceptionPoints: deception,
		DiscoveryPoints: discovery,
		TotalPoints:     deception + discovery,
		VotesReceived:   len(sub.VotesReceived),
		VotedForHidden:  votedForHidden,
	}
}

// SortByRank orders rows by total points descending, then team name
// ascending so equal totals rank deterministically.
func SortByRank(rows []LeaderboardEntry) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].TeamName < rows[j].TeamName
	})
}
