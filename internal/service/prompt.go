package service

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/generation"
)

// DefaultPromptTemplate asks for a short, friendly explanation of a name. The
// language directive is appended only when there is one.
const DefaultPromptTemplate = "Tell me about the name '{{.Name}}' in 120 words or less. " +
	"Use easy words and make it fun, clear, and cool, like chatting with a friend. " +
	"Explain what it means, where it’s from, and why it’s special. " +
	"Make the name feel awesome!.{{with .Directive}} {{.}}{{end}}"

// promptData represents the data passed to the prompt template.
type promptData struct {
	Name      string
	Language  domain.Language
	Directive string
}

// PromptBuilder renders prompts from a parsed template.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses DefaultPromptTemplate.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tmpl: template.Must(template.New("name-meaning").Parse(DefaultPromptTemplate)),
	}
}

// NewPromptBuilderFromFile parses the template at path, or the default
// template when path is empty.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	if path == "" {
		return NewPromptBuilder(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			generation.ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("name-meaning").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for name in lang.
func (b *PromptBuilder) Build(name string, lang domain.Language) (string, error) {
	data := promptData{
		Name:      name,
		Language:  lang,
		Directive: lang.Directive(),
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
