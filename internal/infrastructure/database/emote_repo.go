package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/output"
)

var _ output.EmoteRepository = (*EmoteRepository)(nil)

// EmoteRepository implements output.EmoteRepository using pgx.
type EmoteRepository struct {
	pool *pgxpool.Pool
	q    *Queries
}

func NewEmoteRepository(pool *pgxpool.Pool) *EmoteRepository {
	return &EmoteRepository{pool: pool, q: NewQueries(pool)}
}

func (r *EmoteRepository) FindByCommand(ctx context.Context, command string) (*entities.Emote, error) {
	row, err := r.q.GetEmoteByCommand(ctx, entities.NormalizeCommand(command))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get emote by command %q: %w", command, domain.ErrEmoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get emote by command: %w", err)
	}
	return r.withCommands(ctx, row)
}

func (r *EmoteRepository) FindByID(ctx context.Context, id uint) (*entities.Emote, error) {
	row, err := r.q.GetEmoteByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get emote by id %d: %w", id, domain.ErrEmoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get emote by id: %w", err)
	}
	return r.withCommands(ctx, row)
}

func (r *EmoteRepository) withCommands(ctx context.Context, row emoteRow) (*entities.Emote, error) {
	cmds, err := r.q.GetEmoteCommands(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("get emote commands: %w", err)
	}
	e := emoteToDomain(row, cmds)
	return &e, nil
}

func (r *EmoteRepository) Markup(ctx context.Context, command string, lang entities.Language, targeted bool) (string, error) {
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

func (r *EmoteRepository) List(ctx context.Context) ([]entities.Emote, error) {
	rows, err := r.q.ListEmotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emotes: %w", err)
	}
	cmdRows, err := r.q.ListEmoteCommands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emote commands: %w", err)
	}
	byEmote := make(map[int64][]string, len(rows))
	for _, c := range cmdRows {
		byEmote[c.EmoteID] = append(byEmote[c.EmoteID], c.Command)
	}
	out := make([]entities.Emote, 0, len(rows))
	for _, row := range rows {
		out = append(out, emoteToDomain(row, byEmote[row.ID]))
	}
	return out, nil
}

func (r *EmoteRepository) Commands(ctx context.Context) ([]string, error) {
	cmdRows, err := r.q.ListEmoteCommands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list emote commands: %w", err)
	}
	out := make([]string, 0, len(cmdRows))
	start := 0
	for i := range cmdRows {
		out = append(out, cmdRows[i].Command)
		if i == len(cmdRows)-1 || cmdRows[i+1].EmoteID != cmdRows[i].EmoteID {
			sort.Strings(out[start:])
			start = len(out)
		}
	}
	return out, nil
}

// ReplaceAll swaps the stored emotes for emotes in a single transaction.
func (r *EmoteRepository) ReplaceAll(ctx context.Context, emotes []entities.Emote) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	q := r.q.WithTx(tx)
	if err := q.DeleteAllEmotes(ctx); err != nil {
		return fmt.Errorf("delete emotes: %w", err)
	}
	for i := range emotes {
		e := &emotes[i]
		if err := q.InsertEmote(ctx, emoteFromDomain(e)); err != nil {
			return fmt.Errorf("insert emote %d: %w", e.ID, err)
		}
		for pos, c := range e.Commands {
			key := entities.NormalizeCommand(c)
			if key == "" {
				continue
			}
			if err := q.InsertEmoteCommand(ctx, c, key, int64(e.ID), int32(pos)); err != nil {
				return fmt.Errorf("insert emote command %q: %w", c, err)
			}
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
