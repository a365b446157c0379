package i18n

import (
	"embed"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"xcstringstool/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator renders the tool's own messages from the embedded
// active.<lang>.toml files.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	supported       []language.Tag
	matcher         language.Matcher
}

// NewTranslator loads every embedded message file. An unparsable
// defaultLocale falls back to English.
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
			slog.Warn("i18n: failed to load message file", slog.String("file", file), slog.String("error", err.Error()))
		}
	}

	// The first supported tag is what the matcher answers with when nothing fits.
	supported := []language.Tag{tag}
	for _, t := range bundle.LanguageTags() {
		if t != tag {
			supported = append(supported, t)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		supported:       supported,
		matcher:         language.NewMatcher(supported),
	}
}

// Match returns the message language used for locale and whether locale is
// actually covered by a message file rather than served by the default.
func (t *Translator) Match(locale string) (language.Tag, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return t.defaultLanguage, false
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLanguage, false
	}
	return t.supported[idx], true
}

// T renders key in the language best matching locale, falling back to the
// default language and then to key itself. data["Count"] selects the plural
// form.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	lang, _ := t.Match(locale)
	cfg := &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	}
	if count, ok := data["Count"]; ok {
		cfg.PluralCount = count
	}

	msg, err := i18n.NewLocalizer(t.bundle, lang.String(), t.defaultLanguage.String()).Localize(cfg)
	if err != nil {
		slog.Debug("i18n: localize failed", slog.String("key", key), slog.String("lang", lang.String()), slog.String("error", err.Error()))
		return key
	}
	return msg
}

// Languages lists the languages that have message files.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}
