package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/output"
)

var _ output.UserSettingsRepository = (*UserSettingsRepository)(nil)

type UserSettingsRepository struct {
	q *Queries
}

func NewUserSettingsRepository(pool *pgxpool.Pool) *UserSettingsRepository {
	return &UserSettingsRepository{q: NewQueries(pool)}
}

func (r *UserSettingsRepository) FindByUserID(ctx context.Context, userID string) (*entities.UserSettings, error) {
	row, err := r.q.GetUserSettings(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user settings: %w", err)
	}
	s := userSettingsToDomain(row)
	return &s, nil
}

func (r *UserSettingsRepository) Upsert(ctx context.Context, settings *entities.UserSettings) error {
	created, updated, err := r.q.UpsertUserSettings(ctx, userSettingsFromDomain(settings))
	if err != nil {
		return fmt.Errorf("upsert user settings: %w", err)
	}
	settings.CreatedAt = pgtypeTimestamptzToTime(created)
	settings.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return nil
}

func (r *UserSettingsRepository) Delete(ctx context.Context, userID string) error {
	n, err := r.q.DeleteUserSettings(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user settings: %w", err)
	}
	if n == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}
