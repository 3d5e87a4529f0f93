package output

import (
	"context"

	"emotebot/internal/domain/entities"
)

// MarkupSource returns the markup of the emote known under command.
type MarkupSource interface {
	Markup(ctx context.Context, command string, lang entities.Language, targeted bool) (string, error)
}

type EmoteRepository interface {
	MarkupSource
	FindByCommand(ctx context.Context, command string) (*entities.Emote, error)
	FindByID(ctx context.Context, id uint) (*entities.Emote, error)
	List(ctx context.Context) ([]entities.Emote, error)
	Commands(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, emotes []entities.Emote) error
}

// EmoteLoader fetches emote data from an external source.
type EmoteLoader interface {
	LoadEmotes(ctx context.Context) ([]entities.Emote, error)
}
