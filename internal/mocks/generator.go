package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/namemagic/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// mu protects the call tracking state for concurrent test cases
	mu sync.Mutex

	// prompts contains all prompts passed to GenerateText calls
	prompts []string
}

// Verify interface compliance at compile time
var _ generation.Generator = (*MockGenerator)(nil)

// GenerateText implements the generation.Generator interface
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// CallCount returns how many times GenerateText was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt received, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// LastPrompt returns the most recent prompt, or "" when there were no calls.
func (m *MockGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// NewMockGeneratorWithText creates a MockGenerator that returns text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that always returns ErrGenerationFailed
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrGenerationFailed)
}

// MockGeneratorOutOfCredits creates a MockGenerator that fails with an HTTP 402 status
func MockGeneratorOutOfCredits() *MockGenerator {
	return NewMockGeneratorWithError(generation.NewStatusError(402, `{"error":{"message":"Insufficient credits"}}`))
}
