package entities

import (
	"strings"
)

// LogMessagePair holds the markup printed when an emote is used with and
// without a target.
type LogMessagePair struct {
	Targeted   string `yaml:"targeted"`
	Untargeted string `yaml:"untargeted"`
}

// Markup returns the targeted or untargeted markup.
func (p LogMessagePair) Markup(targeted bool) string {
	if targeted {
		return p.Targeted
	}
	return p.Untargeted
}

type Emote struct {
	ID       uint           `yaml:"id"`
	Name     string         `yaml:"name"`
	Commands []string       `yaml:"commands"`
	En       LogMessagePair `yaml:"en"`
	Ja       LogMessagePair `yaml:"ja"`
}

// Markup returns the log message markup for lang. Unknown languages fall back
// to English.
func (e *Emote) Markup(lang Language, targeted bool) string {
	if lang == LanguageJa {
		return e.Ja.Markup(targeted)
	}
	return e.En.Markup(targeted)
}

// Command returns the first command of the emote, or its name when it has none.
func (e *Emote) Command() string {
	for _, c := range e.Commands {
		if c != "" {
			return c
		}
	}
	return e.Name
}

// NormalizeCommand lower-cases a command and strips the leading slash so
// "/Surprised" and "surprised" match.
func NormalizeCommand(command string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(command), "/"))
}
