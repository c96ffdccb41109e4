package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localesheet/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator renders the converter's own messages (summaries, failure
// banners) through a go-i18n bundle. The localizer for the default
// locale is built once: the common case is a single-locale run.
type Translator struct {
	bundle     *i18n.Bundle
	defaultTag language.Tag
	fallback   *i18n.Localizer
}

// NewTranslator builds a Translator over the embedded active.*.toml
// catalogs, with defaultLocale (e.g. "fr") as the fallback language.
// An unparsable default silently degrades to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:     bundle,
		defaultTag: tag,
		fallback:   i18n.NewLocalizer(bundle, tag.String()),
	}
}

// T renders the message identified by key for the given locale,
// falling back to the default locale and finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	localizer := t.fallback
	if locale != "" && locale != t.defaultTag.String() {
		localizer = i18n.NewLocalizer(t.bundle, locale, t.defaultTag.String())
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: message %q introuvable (locale=%s): %v", key, locale, err)
		return key
	}
	return msg
}
