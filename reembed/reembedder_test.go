package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/curator/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReembedder_EmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)
	embedder := mock.NewMockEmbedder()

	var out bytes.Buffer
	reembedder := NewReembedder(repo, embedder, nil, &out)

	err := reembedder.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No sources found")
	assert.Zero(t, embedder.CallCount())
}

func TestReembedder_ReembedsAllSources(t *testing.T) {
	repo := newTestRepo(t)
	added := seedSources(t, repo, 12)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{0.0, 2.0, 0.0}
		}
		return vectors, nil
	}

	config := &Config{BatchSize: 5, ReportInterval: 5, MaxRetries: 2, RetryDelay: time.Millisecond}

	var out bytes.Buffer
	reembedder := NewReembedder(repo, embedder, config, &out)

	err := reembedder.Run(context.Background())
	require.NoError(t, err)

	// 12 sources at batch size 5 means 3 embedding calls.
	assert.Equal(t, 3, embedder.CallCount())
	assert.Contains(t, out.String(), "Reembedding complete")

	for _, source := range added {
		stored, err := repo.GetSource(context.Background(), source.Id)
		require.NoError(t, err)
		require.Len(t, stored.Vector, 3)
		assert.InDelta(t, 1.0, stored.Vector[1], 0.0001)
	}
}

func TestReembedder_DefaultConfig(t *testing.T) {
	repo := newTestRepo(t)

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), nil, &out)

	assert.Equal(t, 100, reembedder.config.BatchSize)
	assert.Equal(t, 3, reembedder.config.MaxRetries)
}

func TestReembedder_BatchFailureAborts(t *testing.T) {
	repo := newTestRepo(t)
	seedSources(t, repo, 4)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	config := &Config{BatchSize: 2, ReportInterval: 2, MaxRetries: 1, RetryDelay: time.Millisecond}

	var out bytes.Buffer
	reembedder := NewReembedder(repo, embedder, config, &out)

	err := reembedder.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process batch")
}

func TestReembedder_ContextCancellation(t *testing.T) {
	repo := newTestRepo(t)
	seedSources(t, repo, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), nil, &out)

	err := reembedder.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
