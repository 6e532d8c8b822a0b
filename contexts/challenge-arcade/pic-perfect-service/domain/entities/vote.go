package entities

import "time"

// VoteRecord is one accepted (voter, target) pair. Votes are first-class
// ledger rows with a uniqueness constraint on (challenge, voter, target);
// the per-submission vote sets are views over these records. ReceiptID ties
// together the records accepted in a single batch.
type VoteRecord struct {
	VoteID      string
	ChallengeID string
	VoterTeam   string
	TargetTeam  string
	ReceiptID   string
	CastAt      time.Time
}
