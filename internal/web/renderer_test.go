package web_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/platform/i18n"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/phrazzld/namemagic/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T, shareURL string) *web.Renderer {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	r, err := web.NewRenderer(i18n.NewTranslator("en", log), shareURL)
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *web.Renderer, locale string, snap domain.Snapshot) string {
	t.Helper()

	var out strings.Builder
	require.NoError(t, r.Render(&out, locale, snap))
	return out.String()
}

func TestRenderer_Form(t *testing.T) {
	t.Parallel()

	html := render(t, newRenderer(t, ""), "en", domain.Snapshot{
		Language: domain.LanguageEnglish,
		Phase:    domain.PhaseEditing,
	})

	assert.Contains(t, html, `placeholder="Enter your magical name..."`)
	assert.Contains(t, html, "Discover My Name Magic!")
	assert.Contains(t, html, `<option value="english" selected>English (default)</option>`)
	assert.Contains(t, html, `<option value="hindi">Hindi</option>`)
	assert.Contains(t, html, `<option value="marathi">Marathi</option>`)
	assert.NotContains(t, html, `id="result"`)
}

func TestRenderer_FormKeepsInput(t *testing.T) {
	t.Parallel()

	html := render(t, newRenderer(t, ""), "en", domain.Snapshot{
		Name:     "   ",
		Language: domain.LanguageMarathi,
		Phase:    domain.PhaseEditing,
	})

	assert.Contains(t, html, `value="   "`)
	assert.Contains(t, html, `<option value="marathi" selected>`)
}

func TestRenderer_Result(t *testing.T) {
	t.Parallel()

	html := render(t, newRenderer(t, "https://namemagic.example/"), "en", domain.Snapshot{
		Name:     "aria",
		Language: domain.LanguageEnglish,
		Meaning:  "Guardian of lost tv remotes and gifted with eternal optimism and great taste in memes",
		Phase:    domain.PhaseResult,
	})

	assert.Contains(t, html, "<h2>Aria, you are a...</h2>")
	assert.Contains(t, html, "Guardian of lost tv remotes and gifted with eternal optimism and great taste in memes")
	assert.Contains(t, html, "Try Another Name")
	assert.Contains(t, html, `data-title="My Name Magic"`)
	assert.Contains(t, html, `data-text="aria is a Guardian of lost tv remotes`)
	assert.Contains(t, html, `data-url="https://namemagic.example/"`)
	assert.Contains(t, html, `data-unsupported="Sharing is not supported on this device."`)
	assert.NotContains(t, html, `id="reveal"`)
}

func TestRenderer_Localized(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, "")

	hindi := render(t, r, "hi", domain.Snapshot{Phase: domain.PhaseEditing})
	assert.Contains(t, hindi, `<html lang="hi">`)
	assert.Contains(t, hindi, "मेरे नाम का जादू खोजें!")

	marathi := render(t, r, "mr", domain.Snapshot{Name: "Ravi", Meaning: "x", Phase: domain.PhaseResult})
	assert.Contains(t, marathi, "Ravi, तुम्ही आहात...")
}

func TestRenderer_EscapesInput(t *testing.T) {
	t.Parallel()

	html := render(t, newRenderer(t, ""), "en", domain.Snapshot{
		Name:    "<script>alert(1)</script>",
		Meaning: "<b>bold</b>",
		Phase:   domain.PhaseResult,
	})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestNewRenderer_NilTranslator(t *testing.T) {
	t.Parallel()

	_, err := web.NewRenderer(nil, "")
	assert.Error(t, err)
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "aria", expected: "Aria"},
		{input: "Aria", expected: "Aria"},
		{input: "mcDonald", expected: "McDonald"},
		{input: "élise", expected: "Élise"},
		{input: "आर्या", expected: "आर्या"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, web.Capitalize(tt.input))
		})
	}
}

func TestRenderer_MeaningLanguage(t *testing.T) {
	t.Parallel()

	html := render(t, newRenderer(t, ""), "en", domain.Snapshot{
		Name:     "Aria",
		Language: domain.LanguageHindi,
		Meaning:  "तारा",
		Phase:    domain.PhaseResult,
	})

	assert.Contains(t, html, `<p id="meaning" lang="hi">तारा</p>`)
}
