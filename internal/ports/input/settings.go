package input

import (
	"context"

	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
)

// SettingsUpdate holds the fields to change. Nil fields are left as they are.
type SettingsUpdate struct {
	CharacterName *string
	World         *string
	Gender        *string
	Language      *string
}

type SettingsUseCase interface {
	Get(ctx context.Context, userID string) (*entities.UserSettings, error)
	Update(ctx context.Context, userID string, update SettingsUpdate) (*entities.UserSettings, error)
	Delete(ctx context.Context, userID string) error
	// Character returns the character of userID and its preferred language,
	// or a male character named displayName and "" when nothing is saved.
	Character(ctx context.Context, userID, displayName string) (logmessage.Character, entities.Language, error)
}
