package output

import (
	"context"

	"emotebot/internal/domain/entities"
)

type UserSettingsRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.UserSettings, error)
	Upsert(ctx context.Context, settings *entities.UserSettings) error
	Delete(ctx context.Context, userID string) error
}
