package ports

import (
	"context"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	contractsv1 "arcade/contracts/gen/events/v1"
)

// ChallengeRepository owns the single Challenge record per challenge id.
type ChallengeRepository interface {
	GetChallenge(ctx context.Context, challengeID string) (entities.Challenge, bool, error)
	SaveChallenge(ctx context.Context, challenge entities.Challenge) error
	DeleteChallenge(ctx context.Context, challengeID string) error
}

// SubmissionRepository reads and writes gallery entries. Reads hydrate
// VotesReceived and VotesGiven from the vote ledger.
type SubmissionRepository interface {
	GetSubmission(ctx context.Context, challengeID string, teamName string) (entities.Submission, bool, error)
	ListSubmissions(ctx context.Context, challengeID string) ([]entities.Submission, error)
	SaveSubmission(ctx context.Context, submission entities.Submission) error
	DeleteSubmissions(ctx context.Context, challengeID string) error
}

// VoteLedger appends accepted vote batches. AppendVotes must apply the whole
// batch or nothing: implementations enforce uniqueness per (challenge, voter,
// target) and re-check the voter's cap under the same critical section,
// returning the matching domain errors on violation.
type VoteLedger interface {
	AppendVotes(ctx context.Context, challengeID string, voterTeam string, votes []entities.VoteRecord, capLimit int) error
	ListVotesByVoter(ctx context.Context, challengeID string, voterTeam string) ([]entities.VoteRecord, error)
	ListVotes(ctx context.Context, challengeID string) ([]entities.VoteRecord, error)
	DeleteVotes(ctx context.Context, challengeID string) error
}

// LeaderboardRepository is the thin persistence facade over scored rows.
type LeaderboardRepository interface {
	UpsertLeaderboardEntry(ctx context.Context, entry entities.LeaderboardEntry) error
	GetLeaderboardEntry(ctx context.Context, challengeID string, teamName string) (entities.LeaderboardEntry, bool, error)
	ListLeaderboard(ctx context.Context, challengeID string) ([]entities.LeaderboardEntry, error)
	ResetLeaderboard(ctx context.Context, challengeID string) error
}

// TeamDirectory is the narrow read-only view of the team registry. The
// engine never writes through it.
type TeamDirectory interface {
	ListTeamNames(ctx context.Context) ([]string, error)
	TeamExists(ctx context.Context, teamName string) (bool, error)
}

type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Reference   string
	ExpiresAt   time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	Status       string
	CreatedAt    time.Time
	PublishedAt  *time.Time
}

// OutboxWriter persists an event alongside the state change that produced it.
type OutboxWriter interface {
	AppendOutbox(ctx context.Context, event EventEnvelope) error
}

// OutboxRepository is the worker-side view of pending outbox rows.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
