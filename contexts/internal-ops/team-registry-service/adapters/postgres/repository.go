package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arcade/contexts/internal-ops/team-registry-service/ports"
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

func (r *Repository) SaveTeam(ctx context.Context, team ports.Team) error {
	row, err := fromTeam(team)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"members", "last_active_at"}),
		}).
		Create(&row).
		Error
	if err != nil {
		return r.logError("team_registry_repo_save_team_failed", err, "team_name", team.TeamName)
	}
	return nil
}

func (r *Repository) GetTeam(ctx context.Context, teamName string) (ports.Team, bool, error) {
	var row teamModel
	err := r.db.WithContext(ctx).
		Where("team_name = ?", strings.TrimSpace(teamName)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Team{}, false, nil
		}
		return ports.Team{}, false, r.logError("team_registry_repo_get_team_failed", err, "team_name", teamName)
	}
	team, err := toTeam(row)
	if err != nil {
		return ports.Team{}, false, r.logError("team_registry_repo_decode_team_failed", err, "team_name", teamName)
	}
	return team, true, nil
}

func (r *Repository) ListTeams(ctx context.Context) ([]ports.Team, error) {
	var rows []teamModel
	err := r.db.WithContext(ctx).
		Order("team_name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("team_registry_repo_list_teams_failed", err)
	}
	teams := make([]ports.Team, 0, len(rows))
	for _, row := range rows {
		team, err := toTeam(row)
		if err != nil {
			return nil, r.logError("team_registry_repo_decode_team_failed", err, "team_name", row.TeamName)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *Repository) DeleteTeam(ctx context.Context, teamName string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("team_name = ?", strings.TrimSpace(teamName)).
		Delete(&teamModel{})
	if result.Error != nil {
		return false, r.logError("team_registry_repo_delete_team_failed", result.Error, "team_name", teamName)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "internal-ops/team-registry-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("team registry repository operation failed", fields...)
	return err
}

type teamModel struct {
	TeamName     string     `gorm:"column:team_name;primaryKey"`
	Members      []byte     `gorm:"column:members;type:jsonb"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	LastActiveAt *time.Time `gorm:"column:last_active_at"`
}

func (teamModel) TableName() string {
	return "arcade_teams"
}

func fromTeam(team ports.Team) (teamModel, error) {
	members, err := json.Marshal(team.Members)
	if err != nil {
		return teamModel{}, err
	}
	return teamModel{
		TeamName:     strings.TrimSpace(team.TeamName),
		Members:      members,
		CreatedAt:    team.CreatedAt.UTC(),
		LastActiveAt: normalizeOptionalTime(team.LastActiveAt),
	}, nil
}

func toTeam(row teamModel) (ports.Team, error) {
	members := make([]string, 0)
	if len(row.Members) > 0 {
		if err := json.Unmarshal(row.Members, &members); err != nil {
			return ports.Team{}, err
		}
	}
	return ports.Team{
		TeamName:     row.TeamName,
		Members:      members,
		CreatedAt:    row.CreatedAt.UTC(),
		LastActiveAt: normalizeOptionalTime(row.LastActiveAt),
	}, nil
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

var _ ports.Repository = (*Repository)(nil)
