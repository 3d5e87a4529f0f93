package i18n

import (
	"embed"
	"io/fs"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"emotebot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Catalog = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	localizers      sync.Map // locale -> *i18n.Localizer
}

// NewTranslator builds a Translator over the embedded active.*.toml files,
// falling back to defaultLocale (e.g. "en") for missing keys.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("❌ i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Locales lists the languages that have a message file.
func (t *Translator) Locales() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.localizers.Load(locale); ok {
		return l.(*i18n.Localizer)
	}
	langs := []string{t.defaultLanguage.String()}
	if locale != "" {
		langs = append([]string{locale}, langs...)
	}
	l, _ := t.localizers.LoadOrStore(locale, i18n.NewLocalizer(t.bundle, langs...))
	return l.(*i18n.Localizer)
}

// T renders key for locale (a Discord locale such as "ja" or "en-US").
// Missing messages fall back to the default locale, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: message %s introuvable (locale=%q): %v", key, locale, err)
		return key
	}
	return msg
}
