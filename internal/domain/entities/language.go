package entities

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language selects which markup of an emote is rendered.
type Language string

const (
	LanguageEn Language = "en"
	LanguageJa Language = "ja"
)

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// ParseLanguage accepts "en" and "ja".
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEn, LanguageJa:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// MatchLanguage maps any BCP 47 locale (e.g. a Discord locale such as "en-US"
// or "ja") to the closest supported Language. Unparseable locales give English.
func MatchLanguage(locale string) Language {
	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEn
	}
	_, idx, _ := languageMatcher.Match(tag)
	if idx == 1 {
		return LanguageJa
	}
	return LanguageEn
}

func (l Language) String() string {
	return string(l)
}
