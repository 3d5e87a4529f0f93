package database

import (
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
)

func TestEmoteMapping(t *testing.T) {
	e := entities.Emote{
		ID:       3,
		Name:     "Surprised",
		Commands: []string{"/surprised", "/おどろく"},
		En:       entities.LogMessagePair{Targeted: "a", Untargeted: "b"},
		Ja:       entities.LogMessagePair{Targeted: "c", Untargeted: "d"},
	}
	got := emoteToDomain(emoteFromDomain(&e), e.Commands)
	if !reflect.DeepEqual(got, e) {
		t.Fatalf("emote = %+v, want %+v", got, e)
	}
}

func TestUserSettingsMapping(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	row := userSettingsRow{
		UserID:        "42",
		CharacterName: "K'haldru Alaba",
		World:         "Gilgamesh",
		Gender:        "F",
		Language:      "ja",
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
	s := userSettingsToDomain(row)
	if s.Gender != logmessage.Female || s.Language != entities.LanguageJa || !s.CreatedAt.Equal(now) || !s.UpdatedAt.IsZero() {
		t.Fatalf("settings = %+v", s)
	}

	back := userSettingsFromDomain(&s)
	row.CreatedAt, row.UpdatedAt = pgtype.Timestamptz{}, pgtype.Timestamptz{}
	if back != row {
		t.Fatalf("row = %+v, want %+v", back, row)
	}
}

func TestUserSettingsMappingDefaults(t *testing.T) {
	s := userSettingsToDomain(userSettingsRow{UserID: "1", Gender: "?", Language: "fr"})
	if s.Gender != logmessage.Male || s.Language != "" {
		t.Fatalf("settings = %+v", s)
	}
	if row := userSettingsFromDomain(&entities.UserSettings{UserID: "1"}); row.Language != "" || row.Gender != "M" {
		t.Fatalf("row = %+v", row)
	}
}
