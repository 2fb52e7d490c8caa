package reembed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/curator/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repo := newTestRepo(t)
	embedder := mock.NewMockEmbedder()
	processor := NewBatchProcessor(repo, embedder, 3, time.Millisecond)

	err := processor.Process(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, embedder.CallCount())
}

func TestBatchProcessor_UpdatesVectors(t *testing.T) {
	repo := newTestRepo(t)
	added := seedSources(t, repo, 3)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{3.0, 4.0, 0.0} // magnitude 5
		}
		return vectors, nil
	}

	processor := NewBatchProcessor(repo, embedder, 3, time.Millisecond)
	err := processor.Process(context.Background(), added)
	require.NoError(t, err)

	// Vectors are persisted normalized to unit length.
	for _, source := range added {
		stored, err := repo.GetSource(context.Background(), source.Id)
		require.NoError(t, err)
		assert.InDelta(t, 0.6, stored.Vector[0], 0.0001)
		assert.InDelta(t, 0.8, stored.Vector[1], 0.0001)
	}
}

func TestBatchProcessor_RetriesTransientFailures(t *testing.T) {
	repo := newTestRepo(t)
	added := seedSources(t, repo, 2)

	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("transient failure")
		}
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1.0, 0.0, 0.0}
		}
		return vectors, nil
	}

	processor := NewBatchProcessor(repo, embedder, 3, time.Millisecond)
	err := processor.Process(context.Background(), added)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestBatchProcessor_ExhaustedRetriesFail(t *testing.T) {
	repo := newTestRepo(t)
	added := seedSources(t, repo, 1)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("permanent failure")
	}

	processor := NewBatchProcessor(repo, embedder, 2, time.Millisecond)
	err := processor.Process(context.Background(), added)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestBatchProcessor_CountMismatch(t *testing.T) {
	repo := newTestRepo(t)
	added := seedSources(t, repo, 2)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1.0}}, nil // one vector for two sources
	}

	processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)
	err := processor.Process(context.Background(), added)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}
