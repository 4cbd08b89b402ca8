// Package web renders the Name Magic page. A single embedded html/template
// covers both the editing form and the result view; every visible string is
// resolved through the translator for the request's locale.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/platform/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// Translator resolves message IDs for a locale.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// messageIDs are translated for every render and exposed as .Text.
var messageIDs = []string{
	i18n.MsgPageTitle,
	i18n.MsgSubtitle,
	i18n.MsgNamePlaceholder,
	i18n.MsgLanguageLabel,
	i18n.MsgSubmit,
	i18n.MsgLoading,
	i18n.MsgReset,
	i18n.MsgShare,
	i18n.MsgShareFailed,
	i18n.MsgShareUnsupported,
}

var languageLabels = map[domain.Language]string{
	domain.LanguageEnglish: i18n.MsgLanguageEnglish,
	domain.LanguageHindi:   i18n.MsgLanguageHindi,
	domain.LanguageMarathi: i18n.MsgLanguageMarathi,
}

// LanguageOption is one entry of the language select.
type LanguageOption struct {
	Value    domain.Language
	Label    string
	Selected bool
}

// PageData is the template model.
type PageData struct {
	Locale     string
	Text       map[string]string
	Name       string
	Language   domain.Language
	Languages  []LanguageOption
	ShowResult bool
	Heading    string
	Meaning    string
	Share      domain.SharePayload

	// MeaningLang is the BCP 47 tag of the language the meaning was requested in
	MeaningLang string
}

// Renderer renders the page template.
type Renderer struct {
	tmpl       *template.Template
	translator Translator
	shareURL   string
}

// NewRenderer parses the embedded templates. shareURL is attached to share
// payloads; when empty the browser uses the current location.
func NewRenderer(translator Translator, shareURL string) (*Renderer, error) {
	if translator == nil {
		return nil, fmt.Errorf("translator cannot be nil")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Renderer{
		tmpl:       tmpl,
		translator: translator,
		shareURL:   shareURL,
	}, nil
}

// Render writes the page for snap in locale. A session in Result shows the
// result view; any other phase shows the form.
func (r *Renderer) Render(w io.Writer, locale string, snap domain.Snapshot) error {
	data := r.pageData(locale, snap)

	// Render into a buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) pageData(locale string, snap domain.Snapshot) PageData {
	text := make(map[string]string, len(messageIDs))
	for _, id := range messageIDs {
		text[id] = r.translator.T(locale, id, nil)
	}

	lang := snap.Language
	if !lang.IsValid() {
		lang = domain.LanguageEnglish
	}

	options := make([]LanguageOption, 0, len(domain.Languages))
	for _, l := range domain.Languages {
		options = append(options, LanguageOption{
			Value:    l,
			Label:    r.translator.T(locale, languageLabels[l], nil),
			Selected: l == lang,
		})
	}

	data := PageData{
		Locale:    locale,
		Text:      text,
		Name:      snap.Name,
		Language:  lang,
		Languages: options,
	}

	if snap.Phase == domain.PhaseResult {
		data.ShowResult = true
		data.Meaning = snap.Meaning
		data.MeaningLang = lang.Tag().String()
		data.Heading = r.translator.T(locale, i18n.MsgResultHeading, map[string]any{
			"Name": Capitalize(snap.Name),
		})
		data.Share = domain.NewSharePayload(snap.Name, snap.Meaning, r.shareURL)
	}

	return data
}

// Capitalize upper-cases the first letter of s and leaves the rest unchanged.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
