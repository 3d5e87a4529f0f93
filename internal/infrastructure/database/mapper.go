package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func emoteToDomain(e emoteRow, commands []string) entities.Emote {
	return entities.Emote{
		ID:       uint(e.ID),
		Name:     e.Name,
		Commands: commands,
		En:       entities.LogMessagePair{Targeted: e.EnTargeted, Untargeted: e.EnUntargeted},
		Ja:       entities.LogMessagePair{Targeted: e.JaTargeted, Untargeted: e.JaUntargeted},
	}
}

func emoteFromDomain(e *entities.Emote) emoteRow {
	return emoteRow{
		ID:           int64(e.ID),
		Name:         e.Name,
		EnTargeted:   e.En.Targeted,
		EnUntargeted: e.En.Untargeted,
		JaTargeted:   e.Ja.Targeted,
		JaUntargeted: e.Ja.Untargeted,
	}
}

// userSettingsToDomain tolerates unknown stored values by falling back to
// the defaults. An unknown language reads as unset.
func userSettingsToDomain(s userSettingsRow) entities.UserSettings {
	gender, err := logmessage.ParseGender(s.Gender)
	if err != nil {
		gender = logmessage.Male
	}
	lang, err := entities.ParseLanguage(s.Language)
	if err != nil {
		lang = ""
	}
	return entities.UserSettings{
		UserID:        s.UserID,
		CharacterName: s.CharacterName,
		World:         s.World,
		Gender:        gender,
		Language:      lang,
		CreatedAt:     pgtypeTimestamptzToTime(s.CreatedAt),
		UpdatedAt:     pgtypeTimestamptzToTime(s.UpdatedAt),
	}
}

func userSettingsFromDomain(s *entities.UserSettings) userSettingsRow {
	return userSettingsRow{
		UserID:        s.UserID,
		CharacterName: s.CharacterName,
		World:         s.World,
		Gender:        s.Gender.String(),
		Language:      s.Language.String(),
	}
}
