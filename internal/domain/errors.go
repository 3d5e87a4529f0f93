package domain

import (
	"errors"

	"emotebot/internal/logmessage"
)

// Domain errors.
var (
	ErrEmoteNotFound    = errors.New("emote not found")
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrInvalidGender    = errors.New("invalid gender")
	ErrSettingsNotFound = errors.New("user settings not found")
	// ErrMarkupMissing means the emote exists but has no log message for the
	// requested language and targeting.
	ErrMarkupMissing = errors.New("log message not available")
	ErrMultipleSelves   = logmessage.ErrMultipleSelves
)

// Error codes returned by Code. They are stable and used as i18n keys.
const (
	CodeEmoteNotFound    = "emote_not_found"
	CodeInvalidLanguage  = "invalid_language"
	CodeInvalidGender    = "invalid_gender"
	CodeSettingsNotFound = "settings_not_found"
	CodeMultipleSelves   = "multiple_selves"
	CodeMarkupMissing    = "markup_missing"
	CodeInvalidMarkup    = "invalid_markup"
	CodeInternal         = "internal"
)

// Code maps err to a stable error code, or "" for a nil error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var (
		perr *logmessage.ParseError
		aerr *logmessage.AstError
		rerr *logmessage.ProcessError
	)
	switch {
	case errors.Is(err, ErrEmoteNotFound):
		return CodeEmoteNotFound
	case errors.Is(err, ErrInvalidLanguage):
		return CodeInvalidLanguage
	case errors.Is(err, ErrInvalidGender):
		return CodeInvalidGender
	case errors.Is(err, ErrSettingsNotFound):
		return CodeSettingsNotFound
	case errors.Is(err, ErrMultipleSelves):
		return CodeMultipleSelves
	case errors.Is(err, ErrMarkupMissing):
		return CodeMarkupMissing
	case errors.As(err, &perr), errors.As(err, &aerr), errors.As(err, &rerr):
		return CodeInvalidMarkup
	}
	return CodeInternal
}
