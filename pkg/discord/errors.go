package discord

import (
	"emotebot/internal/domain"
	"emotebot/internal/ports/output"
)

// ErrorKey maps a domain error code to its i18n key.
func ErrorKey(code string) string {
	switch code {
	case domain.CodeEmoteNotFound,
		domain.CodeInvalidLanguage,
		domain.CodeInvalidGender,
		domain.CodeSettingsNotFound,
		domain.CodeMultipleSelves,
		domain.CodeMarkupMissing,
		domain.CodeInvalidMarkup:
		return "error." + code
	default:
		return "error." + domain.CodeInternal
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message in locale.
func DomainErrorMessage(tr output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return tr.T(locale, ErrorKey(domain.Code(err)), nil)
}
