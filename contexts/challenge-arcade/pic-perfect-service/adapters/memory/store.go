package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"

	"github.com/google/uuid"
)

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

type Store struct {
	mu sync.RWMutex

	challenges  map[string]entities.Challenge
	submissions map[string]map[string]entities.Submission
	votes       map[string][]entities.VoteRecord
	leaderboard map[string]map[string]entities.LeaderboardEntry
	teams       map[string]struct{}
	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]outboxRecord
}

func NewStore(seedTeams []string) *Store {
	teams := make(map[string]struct{}, len(seedTeams))
	for _, team := range seedTeams {
		team = strings.TrimSpace(team)
		if team == "" {
			continue
		}
		teams[team] = struct{}{}
	}
	return &Store{
		challenges:  make(map[string]entities.Challenge),
		submissions: make(map[string]map[string]entities.Submission),
		votes:       make(map[string][]entities.VoteRecord),
		leaderboard: make(map[string]map[string]entities.LeaderboardEntry),
		teams:       teams,
		idempotency: make(map[string]ports.IdempotencyRecord),
		outbox:      make(map[string]outboxRecord),
	}
}

func (s *Store) SetTeam(teamName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return
	}
	s.teams[teamName] = struct{}{}
}

func (s *Store) SetChallenge(challenge entities.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[strings.TrimSpace(challenge.ChallengeID)] = challenge
}

func (s *Store) SetSubmission(submission entities.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challengeID := strings.TrimSpace(submission.ChallengeID)
	if s.submissions[challengeID] == nil {
		s.submissions[challengeID] = make(map[string]entities.Submission)
	}
	submission.VotesReceived = nil
	submission.VotesGiven = nil
	s.submissions[challengeID][strings.TrimSpace(submission.TeamName)] = submission
}

func (s *Store) GetChallenge(_ context.Context, challengeID string) (entities.Challenge, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[strings.TrimSpace(challengeID)]
	if !ok {
		return entities.Challenge{}, false, nil
	}
	return challenge, true, nil
}

func (s *Store) SaveChallenge(_ context.Context, challenge entities.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[strings.TrimSpace(challenge.ChallengeID)] = challenge
	return nil
}

func (s *Store) DeleteChallenge(_ context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, strings.TrimSpace(challengeID))
	return nil
}

func (s *Store) GetSubmission(_ context.Context, challengeID string, teamName string) (entities.Submission, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challengeID = strings.TrimSpace(challengeID)
	submission, ok := s.submissions[challengeID][strings.TrimSpace(teamName)]
	if !ok {
		return entities.Submission{}, false, nil
	}
	return s.hydrateLocked(challengeID, submission), true, nil
}

func (s *Store) ListSubmissions(_ context.Context, challengeID string) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challengeID = strings.TrimSpace(challengeID)
	items := make([]entities.Submission, 0, len(s.submissions[challengeID]))
	for _, submission := range s.submissions[challengeID] {
		items = append(items, s.hydrateLocked(challengeID, submission))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TeamName < items[j].TeamName })
	return items, nil
}

func (s *Store) SaveSubmission(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	challengeID := strings.TrimSpace(submission.ChallengeID)
	if s.submissions[challengeID] == nil {
		s.submissions[challengeID] = make(map[string]entities.Submission)
	}
	submission.VotesReceived = nil
	submission.VotesGiven = nil
	s.submissions[challengeID][strings.TrimSpace(submission.TeamName)] = submission
	return nil
}

func (s *Store) DeleteSubmissions(_ context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submissions, strings.TrimSpace(challengeID))
	return nil
}

// hydrateLocked fills the vote sets from the ledger. Callers hold s.mu.
func (s *Store) hydrateLocked(challengeID string, submission entities.Submission) entities.Submission {
	given := make([]string, 0)
	received := make([]string, 0)
	for _, vote := range s.votes[challengeID] {
		if vote.VoterTeam == submission.TeamName {
			given = append(given, vote.TargetTeam)
		}
		if vote.TargetTeam == submission.TeamName {
			received = append(received, vote.VoterTeam)
		}
	}
	sort.Strings(given)
	sort.Strings(received)
	submission.VotesGiven = given
	submission.VotesReceived = received
	return submission
}

func (s *Store) AppendVotes(
	_ context.Context,
	challengeID string,
	voterTeam string,
	votes []entities.VoteRecord,
	capLimit int,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challengeID = strings.TrimSpace(challengeID)
	voterTeam = strings.TrimSpace(voterTeam)
	if capLimit < 1 {
		capLimit = entities.DefaultVoteCap
	}

	used := 0
	targets := make(map[string]struct{})
	for _, vote := range s.votes[challengeID] {
		if vote.VoterTeam != voterTeam {
			continue
		}
		used++
		targets[vote.TargetTeam] = struct{}{}
	}

	batch := make([]entities.VoteRecord, 0, len(votes))
	for _, vote := range votes {
		target := strings.TrimSpace(vote.TargetTeam)
		if _, exists := targets[target]; exists {
			return fmt.Errorf("%w: %s", domainerrors.ErrDuplicateVote, target)
		}
		targets[target] = struct{}{}
		vote.ChallengeID = challengeID
		vote.VoterTeam = voterTeam
		vote.TargetTeam = target
		vote.CastAt = vote.CastAt.UTC()
		batch = append(batch, vote)
	}
	if used+len(batch) > capLimit {
		return fmt.Errorf("%w: %d of %d votes already used", domainerrors.ErrVoteLimitExceeded, used, capLimit)
	}

	s.votes[challengeID] = append(s.votes[challengeID], batch...)
	return nil
}

func (s *Store) ListVotesByVoter(_ context.Context, challengeID string, voterTeam string) ([]entities.VoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voterTeam = strings.TrimSpace(voterTeam)
	items := make([]entities.VoteRecord, 0)
	for _, vote := range s.votes[strings.TrimSpace(challengeID)] {
		if vote.VoterTeam == voterTeam {
			items = append(items, vote)
		}
	}
	sortVotesByCastTime(items)
	return items, nil
}

func (s *Store) ListVotes(_ context.Context, challengeID string) ([]entities.VoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source := s.votes[strings.TrimSpace(challengeID)]
	items := make([]entities.VoteRecord, len(source))
	copy(items, source)
	sortVotesByCastTime(items)
	return items, nil
}

func (s *Store) DeleteVotes(_ context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.votes, strings.TrimSpace(challengeID))
	return nil
}

func (s *Store) UpsertLeaderboardEntry(_ context.Context, entry entities.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	challengeID := strings.TrimSpace(entry.ChallengeID)
	if s.leaderboard[challengeID] == nil {
		s.leaderboard[challengeID] = make(map[string]entities.LeaderboardEntry)
	}
	s.leaderboard[challengeID][strings.TrimSpace(entry.TeamName)] = entry
	return nil
}

func (s *Store) GetLeaderboardEntry(
	_ context.Context,
	challengeID string,
	teamName string,
) (entities.LeaderboardEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.leaderboard[strings.TrimSpace(challengeID)][strings.TrimSpace(teamName)]
	if !ok {
		return entities.LeaderboardEntry{}, false, nil
	}
	return entry, true, nil
}

func (s *Store) ListLeaderboard(_ context.Context, challengeID string) ([]entities.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.leaderboard[strings.TrimSpace(challengeID)]
	items := make([]entities.LeaderboardEntry, 0, len(rows))
	for _, entry := range rows {
		items = append(items, entry)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TeamName < items[j].TeamName })
	return items, nil
}

func (s *Store) ResetLeaderboard(_ context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leaderboard, strings.TrimSpace(challengeID))
	return nil
}

func (s *Store) ListTeamNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.teams))
	for name := range s.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) TeamExists(_ context.Context, teamName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.teams[strings.TrimSpace(teamName)]
	return ok, nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = strings.TrimSpace(key)
	record, exists := s.idempotency[key]
	if !exists {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.After(now.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(record.Key)
	existing, exists := s.idempotency[key]
	if exists {
		if existing.RequestHash != record.RequestHash || existing.Reference != record.Reference {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[key] = ports.IdempotencyRecord{
		Key:         key,
		RequestHash: strings.TrimSpace(record.RequestHash),
		Reference:   strings.TrimSpace(record.Reference),
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
	return nil
}

func (s *Store) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, record := range s.idempotency {
		if !record.ExpiresAt.After(now.UTC()) {
			delete(s.idempotency, key)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	if existing, ok := s.outbox[outboxID]; ok {
		if !bytes.Equal(existing.message.Payload, payload) {
			return domainerrors.ErrConflict
		}
		return nil
	}
	createdAt := envelope.OccurredAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	s.outbox[outboxID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:     outboxID,
			EventType:    strings.TrimSpace(envelope.EventType),
			PartitionKey: strings.TrimSpace(envelope.PartitionKey),
			Payload:      payload,
			CreatedAt:    createdAt,
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0, len(s.outbox))
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		items = append(items, row.message)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok {
		return domainerrors.ErrConflict
	}
	row.published = true
	s.outbox[strings.TrimSpace(outboxID)] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortVotesByCastTime(items []entities.VoteRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CastAt.Equal(items[j].CastAt) {
			return items[i].TargetTeam < items[j].TargetTeam
		}
		return items[i].CastAt.Before(items[j].CastAt)
	})
}
