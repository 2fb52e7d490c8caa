package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// BatchProcessor handles embedding generation for batches of source records.
type BatchProcessor struct {
	repo           storage.SourceRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.SourceRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of sources and updates them in the
// database. Vectors are normalized after embedding to ensure compatibility
// with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, sources []*core.SourceRecord) error {
	if len(sources) == 0 {
		return nil
	}

	texts := make([]string, len(sources))
	for i, source := range sources {
		texts[i] = source.FullText
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(sources) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(sources), len(embeddings))
	}

	for i := range sources {
		sources[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.UpdateSources(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to update sources: %w", err)
	}

	return nil
}
