package input

import (
	"context"

	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
)

// RenderRequest describes one emote use.
type RenderRequest struct {
	Command  string
	Language entities.Language
	Origin   logmessage.Character
	// Target is nil for an untargeted use.
	Target     *logmessage.Character
	WorldNames bool
}

// EmoteText is an emote rendered from every point of view.
type EmoteText struct {
	YouUntargeted    string
	YouTargetOther   string
	OtherTargetYou   string
	OtherTargetOther string
	OtherUntargeted  string
}

// ValidationFailure is one markup that could not be reduced.
type ValidationFailure struct {
	EmoteID  uint
	Command  string
	Language entities.Language
	Targeted bool
	Err      error
}

// ValidationReport is the result of reducing every known markup.
type ValidationReport struct {
	Checked  int
	Failures []ValidationFailure
}

// OK reports whether every checked markup reduced.
func (r *ValidationReport) OK() bool {
	return len(r.Failures) == 0
}

type EmoteUseCase interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
	Perspectives(ctx context.Context, command string, lang entities.Language, origin, target logmessage.Character) (*EmoteText, error)
	Suggest(ctx context.Context, command string, limit int) ([]string, error)
	Autocomplete(ctx context.Context, query string, limit int) ([]string, error)
	Validate(ctx context.Context) (*ValidationReport, error)
	List(ctx context.Context) ([]entities.Emote, error)
}
