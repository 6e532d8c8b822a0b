package postgresadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"arcade/contexts/challenge-arcade/pic-perfect-service/domain/entities"
	domainerrors "arcade/contexts/challenge-arcade/pic-perfect-service/domain/errors"
	"arcade/contexts/challenge-arcade/pic-perfect-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetChallenge(ctx context.Context, challengeID string) (entities.Challenge, bool, error) {
	var row challengeStateModel
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Challenge{}, false, nil
		}
		return entities.Challenge{}, false, r.logError("pic_perfect_repo_get_challenge_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	challenge, err := row.toEntity()
	if err != nil {
		return entities.Challenge{}, false, r.logError("pic_perfect_repo_decode_challenge_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	return challenge, true, nil
}

func (r *Repository) SaveChallenge(ctx context.Context, challenge entities.Challenge) error {
	row, err := challengeStateModelFromEntity(challenge)
	if err != nil {
		return r.logError("pic_perfect_repo_encode_challenge_failed", err,
			"challenge_id", strings.TrimSpace(challenge.ChallengeID),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "challenge_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"state":                 row.State,
			"start_time":            row.StartTime,
			"end_time":              row.EndTime,
			"hidden_image_set":      row.HiddenImageSet,
			"hidden_image_revealed": row.HiddenImageRevealed,
			"config":                row.Config,
			"updated_at":            row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("pic_perfect_repo_save_challenge_failed", create.Error,
			"challenge_id", row.ChallengeID,
		)
	}
	return nil
}

func (r *Repository) DeleteChallenge(ctx context.Context, challengeID string) error {
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Delete(&challengeStateModel{}).
		Error
	if err != nil {
		return r.logError("pic_perfect_repo_delete_challenge_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	return nil
}

func (r *Repository) GetSubmission(
	ctx context.Context,
	challengeID string,
	teamName string,
) (entities.Submission, bool, error) {
	var row submissionModel
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Where("team_name = ?", strings.TrimSpace(teamName)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, false, nil
		}
		return entities.Submission{}, false, r.logError("pic_perfect_repo_get_submission_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
			"team_name", strings.TrimSpace(teamName),
		)
	}
	votes, err := r.listVoteRows(ctx, strings.TrimSpace(challengeID))
	if err != nil {
		return entities.Submission{}, false, err
	}
	return hydrateSubmission(row.toEntity(), votes), true, nil
}

func (r *Repository) ListSubmissions(ctx context.Context, challengeID string) ([]entities.Submission, error) {
	var rows []submissionModel
	if err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Order("team_name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("pic_perfect_repo_list_submissions_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	votes, err := r.listVoteRows(ctx, strings.TrimSpace(challengeID))
	if err != nil {
		return nil, err
	}
	items := make([]entities.Submission, 0, len(rows))
	for _, row := range rows {
		items = append(items, hydrateSubmission(row.toEntity(), votes))
	}
	return items, nil
}

func (r *Repository) SaveSubmission(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "challenge_id"}, {Name: "team_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"image_url":    row.ImageURL,
			"prompt":       row.Prompt,
			"hidden":       row.Hidden,
			"submitted_at": row.SubmittedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrDuplicateSubmission
		}
		return r.logError("pic_perfect_repo_save_submission_failed", create.Error,
			"challenge_id", row.ChallengeID,
			"team_name", row.TeamName,
		)
	}
	return nil
}

func (r *Repository) DeleteSubmissions(ctx context.Context, challengeID string) error {
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Delete(&submissionModel{}).
		Error
	if err != nil {
		return r.logError("pic_perfect_repo_delete_submissions_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	return nil
}

// AppendVotes serializes concurrent ballots from one voter by locking the
// voter's gallery row, then re-checks uniqueness and the cap before the
// insert. The unique index on (challenge_id, voter_team, target_team) is
// the backstop for duplicates that slip past the snapshot check.
func (r *Repository) AppendVotes(
	ctx context.Context,
	challengeID string,
	voterTeam string,
	votes []entities.VoteRecord,
	capLimit int,
) error {
	challengeID = strings.TrimSpace(challengeID)
	voterTeam = strings.TrimSpace(voterTeam)
	if capLimit < 1 {
		capLimit = entities.DefaultVoteCap
	}
	if len(votes) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var anchor submissionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("challenge_id = ?", challengeID).
			Where("team_name = ?", voterTeam).
			First(&anchor).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrTeamNotRegistered
			}
			return err
		}

		var existing []voteModel
		if err := tx.
			Where("challenge_id = ?", challengeID).
			Where("voter_team = ?", voterTeam).
			Find(&existing).Error; err != nil {
			return err
		}

		targets := make(map[string]struct{}, len(existing))
		for _, row := range existing {
			targets[row.TargetTeam] = struct{}{}
		}
		rows := make([]voteModel, 0, len(votes))
		for _, vote := range votes {
			target := strings.TrimSpace(vote.TargetTeam)
			if _, exists := targets[target]; exists {
				return fmt.Errorf("%w: %s", domainerrors.ErrDuplicateVote, target)
			}
			targets[target] = struct{}{}
			rows = append(rows, voteModelFromEntity(vote, challengeID, voterTeam, target))
		}
		if len(existing)+len(rows) > capLimit {
			return fmt.Errorf("%w: %d of %d votes already used", domainerrors.ErrVoteLimitExceeded, len(existing), capLimit)
		}

		if err := tx.Create(&rows).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateVote
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateVote) ||
			errors.Is(err, domainerrors.ErrVoteLimitExceeded) ||
			errors.Is(err, domainerrors.ErrTeamNotRegistered) {
			return err
		}
		return r.logError("pic_perfect_repo_append_votes_failed", err,
			"challenge_id", challengeID,
			"voter_team", voterTeam,
			"batch_size", len(votes),
		)
	}
	return nil
}

func (r *Repository) ListVotesByVoter(
	ctx context.Context,
	challengeID string,
	voterTeam string,
) ([]entities.VoteRecord, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Where("voter_team = ?", strings.TrimSpace(voterTeam)).
		Order("cast_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("pic_perfect_repo_list_votes_by_voter_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
			"voter_team", strings.TrimSpace(voterTeam),
		)
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) ListVotes(ctx context.Context, challengeID string) ([]entities.VoteRecord, error) {
	rows, err := r.listVoteRows(ctx, strings.TrimSpace(challengeID))
	if err != nil {
		return nil, err
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) DeleteVotes(ctx context.Context, challengeID string) error {
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Delete(&voteModel{}).
		Error
	if err != nil {
		return r.logError("pic_perfect_repo_delete_votes_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	return nil
}

func (r *Repository) listVoteRows(ctx context.Context, challengeID string) ([]voteModel, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("cast_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("pic_perfect_repo_list_votes_failed", err,
			"challenge_id", challengeID,
		)
	}
	return rows, nil
}

func (r *Repository) UpsertLeaderboardEntry(ctx context.Context, entry entities.LeaderboardEntry) error {
	row := leaderboardModelFromEntity(entry)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "challenge_id"}, {Name: "team_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"image_url":        row.ImageURL,
			"deception_points": row.DeceptionPoints,
			"discovery_points": row.DiscoveryPoints,
			"total_points":     row.TotalPoints,
			"votes_received":   row.VotesReceived,
			"voted_for_hidden": row.VotedForHidden,
			"updated_at":       row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("pic_perfect_repo_upsert_leaderboard_failed", create.Error,
			"challenge_id", row.ChallengeID,
			"team_name", row.TeamName,
		)
	}
	return nil
}

func (r *Repository) GetLeaderboardEntry(
	ctx context.Context,
	challengeID string,
	teamName string,
) (entities.LeaderboardEntry, bool, error) {
	var row leaderboardModel
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Where("team_name = ?", strings.TrimSpace(teamName)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LeaderboardEntry{}, false, nil
		}
		return entities.LeaderboardEntry{}, false, r.logError("pic_perfect_repo_get_leaderboard_entry_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
			"team_name", strings.TrimSpace(teamName),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListLeaderboard(ctx context.Context, challengeID string) ([]entities.LeaderboardEntry, error) {
	var rows []leaderboardModel
	if err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Order("total_points DESC").
		Order("team_name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("pic_perfect_repo_list_leaderboard_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	items := make([]entities.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ResetLeaderboard(ctx context.Context, challengeID string) error {
	err := r.db.WithContext(ctx).
		Where("challenge_id = ?", strings.TrimSpace(challengeID)).
		Delete(&leaderboardModel{}).
		Error
	if err != nil {
		return r.logError("pic_perfect_repo_reset_leaderboard_failed", err,
			"challenge_id", strings.TrimSpace(challengeID),
		)
	}
	return nil
}

func (r *Repository) ListTeamNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&teamRowModel{}).
		Order("team_name ASC").
		Pluck("team_name", &names).
		Error
	if err != nil {
		if isUndefinedTable(err) {
			// Registry schema is optional in local development; callers see an empty roster.
			return []string{}, nil
		}
		return nil, r.logError("pic_perfect_repo_list_team_names_failed", err)
	}
	return names, nil
}

func (r *Repository) TeamExists(ctx context.Context, teamName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamRowModel{}).
		Where("team_name = ?", strings.TrimSpace(teamName)).
		Count(&count).
		Error
	if err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}
		return false, r.logError("pic_perfect_repo_team_exists_failed", err,
			"team_name", strings.TrimSpace(teamName),
		)
	}
	return count > 0, nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, r.logError("pic_perfect_repo_idempotency_get_failed", err,
			"idempotency_key", strings.TrimSpace(key),
		)
	}
	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).Error; err != nil {
			return ports.IdempotencyRecord{}, false, r.logError("pic_perfect_repo_idempotency_expire_delete_failed", err,
				"idempotency_key", strings.TrimSpace(key),
			)
		}
		return ports.IdempotencyRecord{}, false, nil
	}
	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		Reference:   row.Reference,
		ExpiresAt:   row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:         strings.TrimSpace(record.Key),
		RequestHash: strings.TrimSpace(record.RequestHash),
		Reference:   strings.TrimSpace(record.Reference),
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("pic_perfect_repo_idempotency_put_failed", create.Error, "idempotency_key", row.Key)
	}
	if create.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).Error; err != nil {
		return r.logError("pic_perfect_repo_idempotency_load_existing_failed", err, "idempotency_key", row.Key)
	}
	if existing.RequestHash != row.RequestHash || existing.Reference != row.Reference {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&idempotencyModel{})
	if result.Error != nil {
		return 0, r.logError("pic_perfect_repo_idempotency_delete_expired_failed", result.Error)
	}
	return int(result.RowsAffected), nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return r.logError("pic_perfect_repo_append_outbox_marshal_failed", err,
			"event_id", strings.TrimSpace(envelope.EventID),
			"event_type", strings.TrimSpace(envelope.EventType),
		)
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("pic_perfect_repo_append_outbox_insert_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	if create.RowsAffected > 0 {
		return nil
	}

	var existing outboxModel
	if err := r.db.WithContext(ctx).
		Select("payload").
		Where("outbox_id = ?", row.OutboxID).
		First(&existing).Error; err != nil {
		return r.logError("pic_perfect_repo_append_outbox_load_existing_failed", err,
			"outbox_id", row.OutboxID,
		)
	}
	if !bytes.Equal(existing.Payload, row.Payload) {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("pic_perfect_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			Status:       row.Status,
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("pic_perfect_repo_mark_outbox_published_failed", result.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "challenge-arcade/pic-perfect-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("pic perfect repository operation failed", fields...)
	return err
}

type challengeStateModel struct {
	ChallengeID         string     `gorm:"column:challenge_id;primaryKey"`
	State               string     `gorm:"column:state"`
	StartTime           time.Time  `gorm:"column:start_time"`
	EndTime             *time.Time `gorm:"column:end_time"`
	HiddenImageSet      bool       `gorm:"column:hidden_image_set"`
	HiddenImageRevealed bool       `gorm:"column:hidden_image_revealed"`
	Config              []byte     `gorm:"column:config;type:jsonb"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (challengeStateModel) TableName() string {
	return "arcade_challenge_state"
}

func challengeStateModelFromEntity(challenge entities.Challenge) (challengeStateModel, error) {
	row := challengeStateModel{
		ChallengeID:         strings.TrimSpace(challenge.ChallengeID),
		State:               string(challenge.State),
		StartTime:           challenge.StartTime.UTC(),
		EndTime:             normalizeOptionalTime(challenge.EndTime),
		HiddenImageSet:      challenge.Metadata.HiddenImageSet,
		HiddenImageRevealed: challenge.Metadata.HiddenImageRevealed,
		UpdatedAt:           challenge.UpdatedAt.UTC(),
	}
	if len(challenge.Config) > 0 {
		config, err := json.Marshal(challenge.Config)
		if err != nil {
			return challengeStateModel{}, err
		}
		row.Config = config
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return row, nil
}

func (m challengeStateModel) toEntity() (entities.Challenge, error) {
	challenge := entities.Challenge{
		ChallengeID: m.ChallengeID,
		State:       entities.ChallengeState(m.State),
		StartTime:   m.StartTime.UTC(),
		EndTime:     normalizeOptionalTime(m.EndTime),
		Metadata: entities.ChallengeMetadata{
			HiddenImageSet:      m.HiddenImageSet,
			HiddenImageRevealed: m.HiddenImageRevealed,
		},
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if len(m.Config) > 0 {
		if err := json.Unmarshal(m.Config, &challenge.Config); err != nil {
			return entities.Challenge{}, err
		}
	}
	return challenge, nil
}

type submissionModel struct {
	ChallengeID string    `gorm:"column:challenge_id;primaryKey"`
	TeamName    string    `gorm:"column:team_name;primaryKey"`
	ImageURL    string    `gorm:"column:image_url"`
	Prompt      string    `gorm:"column:prompt"`
	Hidden      bool      `gorm:"column:hidden"`
	SubmittedAt time.Time `gorm:"column:submitted_at"`
}

func (submissionModel) TableName() string {
	return "pic_perfect_images"
}

func submissionModelFromEntity(submission entities.Submission) submissionModel {
	row := submissionModel{
		ChallengeID: strings.TrimSpace(submission.ChallengeID),
		TeamName:    strings.TrimSpace(submission.TeamName),
		ImageURL:    strings.TrimSpace(submission.ImageURL),
		Prompt:      strings.TrimSpace(submission.Prompt),
		Hidden:      submission.Hidden,
		SubmittedAt: submission.SubmittedAt.UTC(),
	}
	if row.SubmittedAt.IsZero() {
		row.SubmittedAt = time.Now().UTC()
	}
	return row
}

func (m submissionModel) toEntity() entities.Submission {
	return entities.Submission{
		ChallengeID: m.ChallengeID,
		TeamName:    m.TeamName,
		ImageURL:    m.ImageURL,
		Prompt:      m.Prompt,
		Hidden:      m.Hidden,
		SubmittedAt: m.SubmittedAt.UTC(),
	}
}

type voteModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ChallengeID string    `gorm:"column:challenge_id;uniqueIndex:idx_pic_perfect_votes_identity"`
	VoterTeam   string    `gorm:"column:voter_team;uniqueIndex:idx_pic_perfect_votes_identity"`
	TargetTeam  string    `gorm:"column:target_team;uniqueIndex:idx_pic_perfect_votes_identity"`
	ReceiptID   string    `gorm:"column:receipt_id"`
	CastAt      time.Time `gorm:"column:cast_at"`
}

func (voteModel) TableName() string {
	return "pic_perfect_votes"
}

func voteModelFromEntity(vote entities.VoteRecord, challengeID string, voterTeam string, targetTeam string) voteModel {
	row := voteModel{
		ID:          strings.TrimSpace(vote.VoteID),
		ChallengeID: challengeID,
		VoterTeam:   voterTeam,
		TargetTeam:  targetTeam,
		ReceiptID:   strings.TrimSpace(vote.ReceiptID),
		CastAt:      vote.CastAt.UTC(),
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CastAt.IsZero() {
		row.CastAt = time.Now().UTC()
	}
	return row
}

func (m voteModel) toEntity() entities.VoteRecord {
	return entities.VoteRecord{
		VoteID:      m.ID,
		ChallengeID: m.ChallengeID,
		VoterTeam:   m.VoterTeam,
		TargetTeam:  m.TargetTeam,
		ReceiptID:   m.ReceiptID,
		CastAt:      m.CastAt.UTC(),
	}
}

type leaderboardModel struct {
	ChallengeID     string    `gorm:"column:challenge_id;primaryKey"`
	TeamName        string    `gorm:"column:team_name;primaryKey"`
	ImageURL        string    `gorm:"column:image_url"`
	DeceptionPoints int       `gorm:"column:deception_points"`
	DiscoveryPoints int       `gorm:"column:discovery_points"`
	TotalPoints     int       `gorm:"column:total_points"`
	VotesReceived   int       `gorm:"column:votes_received"`
	VotedForHidden  bool      `gorm:"column:voted_for_hidden"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (leaderboardModel) TableName() string {
	return "pic_perfect_leaderboard"
}

func leaderboardModelFromEntity(entry entities.LeaderboardEntry) leaderboardModel {
	row := leaderboardModel{
		ChallengeID:     strings.TrimSpace(entry.ChallengeID),
		TeamName:        strings.TrimSpace(entry.TeamName),
		ImageURL:        strings.TrimSpace(entry.ImageURL),
		DeceptionPoints: entry.DeceptionPoints,
		DiscoveryPoints: entry.DiscoveryPoints,
		TotalPoints:     entry.TotalPoints,
		VotesReceived:   entry.VotesReceived,
		VotedForHidden:  entry.VotedForHidden,
		UpdatedAt:       entry.UpdatedAt.UTC(),
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return row
}

func (m leaderboardModel) toEntity() entities.LeaderboardEntry {
	return entities.LeaderboardEntry{
		ChallengeID:     m.ChallengeID,
		TeamName:        m.TeamName,
		ImageURL:        m.ImageURL,
		DeceptionPoints: m.DeceptionPoints,
		DiscoveryPoints: m.DiscoveryPoints,
		TotalPoints:     m.TotalPoints,
		VotesReceived:   m.VotesReceived,
		VotedForHidden:  m.VotedForHidden,
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

type idempotencyModel struct {
	Key         string    `gorm:"column:key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	Reference   string    `gorm:"column:reference"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "pic_perfect_idempotency"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "pic_perfect_outbox"
}

type teamRowModel struct {
	TeamName string `gorm:"column:team_name;primaryKey"`
}

func (teamRowModel) TableName() string {
	return "arcade_teams"
}

func hydrateSubmission(submission entities.Submission, votes []voteModel) entities.Submission {
	given := make([]string, 0)
	received := make([]string, 0)
	for _, vote := range votes {
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

func toVoteEntities(rows []voteModel) []entities.VoteRecord {
	items := make([]entities.VoteRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

var _ ports.ChallengeRepository = (*Repository)(nil)
var _ ports.SubmissionRepository = (*Repository)(nil)
var _ ports.VoteLedger = (*Repository)(nil)
var _ ports.LeaderboardRepository = (*Repository)(nil)
var _ ports.TeamDirectory = (*Repository)(nil)
var _ ports.IdempotencyStore = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
