package discord

import (
	"context"
	"time"

	"emotebot/internal/ports/input"
	"emotebot/internal/ports/output"
)

// Discord drops interactions that are not answered within three seconds.
const interactionTimeout = 2500 * time.Millisecond

// Handler handles Discord interactions using use cases.
type Handler struct {
	emoteUseCase    input.EmoteUseCase
	settingsUseCase input.SettingsUseCase
	translator      output.T
	worldNames      bool
}

// NewHandler creates a Handler.
func NewHandler(
	emoteUseCase input.EmoteUseCase,
	settingsUseCase input.SettingsUseCase,
	translator output.T,
	worldNames bool,
) *Handler {
	return &Handler{
		emoteUseCase:    emoteUseCase,
		settingsUseCase: settingsUseCase,
		translator:      translator,
		worldNames:      worldNames,
	}
}

func interactionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), interactionTimeout)
}
