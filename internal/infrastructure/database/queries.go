package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Queries holds the SQL used by the repositories.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type emoteRow struct {
	ID           int64
	Name         string
	EnTargeted   string
	EnUntargeted string
	JaTargeted   string
	JaUntargeted string
}

type emoteCommandRow struct {
	EmoteID int64
	Command string
}

type userSettingsRow struct {
	UserID        string
	CharacterName string
	World         string
	Gender        string
	Language      string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

const emoteColumns = `e.id, e.name, e.en_targeted, e.en_untargeted, e.ja_targeted, e.ja_untargeted`

func scanEmote(row pgx.Row) (emoteRow, error) {
	var e emoteRow
	err := row.Scan(&e.ID, &e.Name, &e.EnTargeted, &e.EnUntargeted, &e.JaTargeted, &e.JaUntargeted)
	return e, err
}

const getEmoteByID = `SELECT ` + emoteColumns + ` FROM emotes e WHERE e.id = $1`

func (q *Queries) GetEmoteByID(ctx context.Context, id int64) (emoteRow, error) {
	return scanEmote(q.db.QueryRow(ctx, getEmoteByID, id))
}

const getEmoteByCommand = `SELECT ` + emoteColumns + `
FROM emotes e
JOIN emote_commands c ON c.emote_id = e.id
WHERE c.normalized = $1`

func (q *Queries) GetEmoteByCommand(ctx context.Context, normalized string) (emoteRow, error) {
	return scanEmote(q.db.QueryRow(ctx, getEmoteByCommand, normalized))
}

const listEmotes = `SELECT ` + emoteColumns + ` FROM emotes e ORDER BY e.id`

func (q *Queries) ListEmotes(ctx context.Context) ([]emoteRow, error) {
	rows, err := q.db.Query(ctx, listEmotes)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (emoteRow, error) {
		return scanEmote(row)
	})
}

const listEmoteCommands = `SELECT emote_id, command FROM emote_commands ORDER BY emote_id, position`

func (q *Queries) ListEmoteCommands(ctx context.Context) ([]emoteCommandRow, error) {
	rows, err := q.db.Query(ctx, listEmoteCommands)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (emoteCommandRow, error) {
		var c emoteCommandRow
		err := row.Scan(&c.EmoteID, &c.Command)
		return c, err
	})
}

const getEmoteCommands = `SELECT command FROM emote_commands WHERE emote_id = $1 ORDER BY position`

func (q *Queries) GetEmoteCommands(ctx context.Context, emoteID int64) ([]string, error) {
	rows, err := q.db.Query(ctx, getEmoteCommands, emoteID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

const deleteAllEmotes = `DELETE FROM emotes`

// DeleteAllEmotes also removes every command through ON DELETE CASCADE.
func (q *Queries) DeleteAllEmotes(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllEmotes)
	return err
}

const insertEmote = `INSERT INTO emotes (id, name, en_targeted, en_untargeted, ja_targeted, ja_untargeted)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) InsertEmote(ctx context.Context, e emoteRow) error {
	_, err := q.db.Exec(ctx, insertEmote, e.ID, e.Name, e.EnTargeted, e.EnUntargeted, e.JaTargeted, e.JaUntargeted)
	return err
}

const insertEmoteCommand = `INSERT INTO emote_commands (command, normalized, emote_id, position)
VALUES ($1, $2, $3, $4)
ON CONFLICT (normalized) DO UPDATE SET command = EXCLUDED.command, emote_id = EXCLUDED.emote_id, position = EXCLUDED.position`

func (q *Queries) InsertEmoteCommand(ctx context.Context, command, normalized string, emoteID int64, position int32) error {
	_, err := q.db.Exec(ctx, insertEmoteCommand, command, normalized, emoteID, position)
	return err
}

const getUserSettings = `SELECT user_id, character_name, world, gender, language, created_at, updated_at
FROM user_settings WHERE user_id = $1`

func (q *Queries) GetUserSettings(ctx context.Context, userID string) (userSettingsRow, error) {
	var s userSettingsRow
	err := q.db.QueryRow(ctx, getUserSettings, userID).Scan(
		&s.UserID, &s.CharacterName, &s.World, &s.Gender, &s.Language, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

const upsertUserSettings = `INSERT INTO user_settings (user_id, character_name, world, gender, language)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
    character_name = EXCLUDED.character_name,
    world = EXCLUDED.world,
    gender = EXCLUDED.gender,
    language = EXCLUDED.language,
    updated_at = NOW()
RETURNING created_at, updated_at`

func (q *Queries) UpsertUserSettings(ctx context.Context, s userSettingsRow) (created, updated pgtype.Timestamptz, err error) {
	err = q.db.QueryRow(ctx, upsertUserSettings, s.UserID, s.CharacterName, s.World, s.Gender, s.Language).Scan(&created, &updated)
	return created, updated, err
}

const deleteUserSettings = `DELETE FROM user_settings WHERE user_id = $1`

func (q *Queries) DeleteUserSettings(ctx context.Context, userID string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteUserSettings, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
