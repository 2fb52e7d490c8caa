// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.LanguageModel,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	embeddings, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockModel := mock.NewMockLanguageModel()
//	mockModel.GenerateTextFunc = func(ctx context.Context, system, content string, maxTokens int) (string, error) {
//	    return "canned insight", nil
//	}
//
//	// Check call counts and recorded prompts
//	count := mockModel.CallCount()
//	first := mockModel.Calls()[0]
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockLanguageModel: Returns a deterministic stand-in completion
//   - MockProvider: Aggregates mock model and embedder
package mock
