package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// LanguageModel generates text completions from a system prompt and content.
// Implementations must be thread-safe for concurrent use.
type LanguageModel interface {
	// GenerateText renders a completion for the given system prompt and user
	// content, bounded by maxTokens output tokens (0 means the provider default).
	// Returns an error if generation fails.
	GenerateText(ctx context.Context, systemPrompt, content string, maxTokens int) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages LanguageModel and Embedder instances,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// LanguageModel returns the text generation service.
	// The returned LanguageModel is safe for concurrent use.
	LanguageModel() LanguageModel

	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
