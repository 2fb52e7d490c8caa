package mock

import (
	"context"
	"fmt"
	"sync"
)

// MockLanguageModel is a test double for ai.LanguageModel.
// It allows custom behavior injection via function fields.
// Safe for concurrent use: transformation fan-out calls it from many tasks.
type MockLanguageModel struct {
	// GenerateTextFunc is called by GenerateText if set.
	// If nil, uses default echo behavior.
	GenerateTextFunc func(ctx context.Context, systemPrompt, content string, maxTokens int) (string, error)

	mu        sync.Mutex
	callCount int
	calls     []MockGenerateCall
}

// MockGenerateCall captures the arguments of a single GenerateText invocation.
type MockGenerateCall struct {
	SystemPrompt string
	Content      string
	MaxTokens    int
}

// NewMockLanguageModel creates a mock language model with default echo behavior.
// Note: Returns concrete type to allow test assertions via GetMockModel().
func NewMockLanguageModel() *MockLanguageModel {
	return &MockLanguageModel{}
}

// GenerateText returns a deterministic completion derived from the input.
// Default behavior: echoes a summary of the content length.
func (m *MockLanguageModel) GenerateText(ctx context.Context, systemPrompt, content string, maxTokens int) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.calls = append(m.calls, MockGenerateCall{
		SystemPrompt: systemPrompt,
		Content:      content,
		MaxTokens:    maxTokens,
	})
	fn := m.GenerateTextFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, systemPrompt, content, maxTokens)
	}

	// Default: deterministic stand-in output
	return fmt.Sprintf("mock output (%d input bytes)", len(content)), nil
}

// CallCount returns the number of times GenerateText was called.
func (m *MockLanguageModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Calls returns the recorded invocations, in order.
func (m *MockLanguageModel) Calls() []MockGenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockGenerateCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Reset clears recorded calls and any injected behavior.
func (m *MockLanguageModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.calls = nil
	m.GenerateTextFunc = nil
}
