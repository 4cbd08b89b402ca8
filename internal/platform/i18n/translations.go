// Package i18n localizes the strings of the rendered page. Translations are
// embedded TOML files loaded into a go-i18n bundle; the locale of a request is
// negotiated from its Accept-Language header.
package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message IDs used by the page templates.
const (
	MsgPageTitle        = "page_title"
	MsgSubtitle         = "subtitle"
	MsgNamePlaceholder  = "name_placeholder"
	MsgLanguageLabel    = "language_label"
	MsgLanguageEnglish  = "language_english"
	MsgLanguageHindi    = "language_hindi"
	MsgLanguageMarathi  = "language_marathi"
	MsgSubmit           = "submit"
	MsgLoading          = "loading"
	MsgResultHeading    = "result_heading"
	MsgReset            = "reset"
	MsgShare            = "share"
	MsgShareFailed      = "share_failed"
	MsgShareUnsupported = "share_unsupported"
)

// Supported lists the locales with an embedded translation file. The first
// entry is the fallback used by the matcher.
var Supported = []language.Tag{
	language.English,
	language.Hindi,
	language.Marathi,
}

var localeFiles = []string{"active.en.toml", "active.hi.toml", "active.mr.toml"}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	tags            []language.Tag
	matcher         language.Matcher
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator using the given default locale (e.g. "hi").
// A locale that is unparsable or has no translation file falls back to English.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "i18n"))

	tag, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn("invalid default locale, using English",
			slog.String("locale", defaultLocale),
			slog.String("error", err.Error()))
		tag = language.English
	} else if !isSupported(tag) {
		logger.Warn("default locale has no translations, using English",
			slog.String("locale", defaultLocale))
		tag = language.English
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("failed to load translation file",
				slog.String("file", file),
				slog.String("error", err.Error()))
		}
	}

	// The default goes first so that the matcher falls back to it.
	tags := []language.Tag{tag}
	for _, t := range Supported {
		if t != tag {
			tags = append(tags, t)
		}
	}

	return &Translator{
		bundle:          bundle,
		tags:            tags,
		matcher:         language.NewMatcher(tags),
		defaultLanguage: tag,
		logger:          logger,
	}
}

// DefaultLocale returns the fallback locale.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// Match negotiates the best supported locale for an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.DefaultLocale()
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.DefaultLocale()
	}

	_, index, confidence := t.matcher.Match(desired...)
	if confidence == language.No {
		return t.DefaultLocale()
	}
	return t.tags[index].String()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("localize failed",
			slog.String("key", key),
			slog.Any("locales", languages),
			slog.String("error", err.Error()))
		return key
	}
	return msg
}

func isSupported(tag language.Tag) bool {
	for _, t := range Supported {
		if t == tag {
			return true
		}
	}
	return false
}
