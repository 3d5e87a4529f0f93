package emotestore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/output"
)

var _ output.EmoteRepository = (*Repository)(nil)

// Repository keeps emotes in memory, indexed by every command alias.
type Repository struct {
	mu        sync.RWMutex
	byID      map[uint]*entities.Emote
	byCommand map[string]*entities.Emote
}

func NewRepository(emotes ...entities.Emote) *Repository {
	r := &Repository{}
	r.index(emotes)
	return r
}

func (r *Repository) index(emotes []entities.Emote) {
	byID := make(map[uint]*entities.Emote, len(emotes))
	byCommand := make(map[string]*entities.Emote, len(emotes)*2)
	for i := range emotes {
		e := cloneEmote(emotes[i])
		byID[e.ID] = &e
		for _, c := range e.Commands {
			if key := entities.NormalizeCommand(c); key != "" {
				byCommand[key] = &e
			}
		}
	}
	r.mu.Lock()
	r.byID = byID
	r.byCommand = byCommand
	r.mu.Unlock()
}

func (r *Repository) FindByCommand(ctx context.Context, command string) (*entities.Emote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byCommand[entities.NormalizeCommand(command)]
	if !ok {
		return nil, fmt.Errorf("find emote %q: %w", command, domain.ErrEmoteNotFound)
	}
	out := cloneEmote(*e)
	return &out, nil
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Emote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("find emote %d: %w", id, domain.ErrEmoteNotFound)
	}
	out := cloneEmote(*e)
	return &out, nil
}

func (r *Repository) Markup(ctx context.Context, command string, lang entities.Language, targeted bool) (string, error) {
	e, err := r.FindByCommand(ctx, command)
	if err != nil {
		return "", err
	}
	markup := e.Markup(lang, targeted)
	if markup == "" {
		return "", fmt.Errorf("markup of %q (%s, targeted=%t): %w", command, lang, targeted, domain.ErrMarkupMissing)
	}
	return markup, nil
}

// List returns every emote sorted by ID.
func (r *Repository) List(ctx context.Context) ([]entities.Emote, error) {
	r.mu.RLock()
	out := make([]entities.Emote, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, cloneEmote(*e))
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Commands returns every non-empty command, ordered by emote ID then command.
func (r *Repository) Commands(ctx context.Context) ([]string, error) {
	emotes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return CommandsOf(emotes), nil
}

func (r *Repository) ReplaceAll(ctx context.Context, emotes []entities.Emote) error {
	r.index(emotes)
	return nil
}

// CommandsOf flattens the commands of emotes, which must be sorted by ID.
func CommandsOf(emotes []entities.Emote) []string {
	var out []string
	for _, e := range emotes {
		cmds := make([]string, 0, len(e.Commands))
		for _, c := range e.Commands {
			if c != "" {
				cmds = append(cmds, c)
			}
		}
		sort.Strings(cmds)
		out = append(out, cmds...)
	}
	return out
}

func cloneEmote(e entities.Emote) entities.Emote {
	e.Commands = append([]string(nil), e.Commands...)
	return e
}
