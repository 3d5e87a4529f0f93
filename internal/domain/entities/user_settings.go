package entities

import (
	"time"

	"emotebot/internal/logmessage"
)

// UserSettings describes the character a Discord user plays.
type UserSettings struct {
	UserID        string
	CharacterName string
	World         string
	Gender        logmessage.Gender
	Language      Language
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Character returns the logmessage character for these settings. The Discord
// display name is used when no character name was set.
func (s *UserSettings) Character(displayName string) logmessage.Character {
	name := s.CharacterName
	if name == "" {
		name = displayName
	}
	return logmessage.Character{
		Name:     name,
		World:    s.World,
		Gender:   s.Gender,
		IsPlayer: true,
	}
}
