package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/curator/ai/mock"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearcher(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(sourceRepo, provider)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		logger := slog.Default()
		searcher, err := NewSearcher(sourceRepo, provider, WithLogger(logger))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(sourceRepo, provider, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil source repository", func(t *testing.T) {
		_, err := NewSearcher(nil, provider)
		assert.Equal(t, ErrSourceRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewSearcher(sourceRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestFindSimilar_EmptyDatabase(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()
	searcher, err := NewSearcher(sourceRepo, provider)
	require.NoError(t, err)

	ctx := context.Background()
	results, err := searcher.FindSimilar(ctx, "test query", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindSimilar_RanksBySimilarity(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	sources := []*core.SourceRecord{
		{
			Title:    "Neural networks",
			FullText: "An overview of artificial neural architectures",
			Vector:   []float32{0.9, 0.1, 0.0},
		},
		{
			Title:    "Gradient descent",
			FullText: "Optimization methods for model training",
			Vector:   []float32{0.85, 0.15, 0.0},
		},
		{
			Title:    "Sourdough",
			FullText: "Baking bread at home with a wild starter",
			Vector:   []float32{0.1, 0.1, 0.8},
		},
	}

	added, err := sourceRepo.AddSources(ctx, sources...)
	require.NoError(t, err)
	require.Len(t, added, 3)

	mockEmbedder := mock.NewMockEmbedder()
	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.88, 0.12, 0.0}, nil
	}
	mockProvider := mock.NewMockProviderWithServices(mock.NewMockLanguageModel(), mockEmbedder)

	searcher, err := NewSearcher(sourceRepo, mockProvider)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "deep architectures overview", 10)
	require.NoError(t, err)

	// The baking source falls below the similarity floor.
	require.Len(t, results, 2)
	for i := 0; i < len(results)-1; i++ {
		assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
	}
	assert.Equal(t, "Neural networks", results[0].Source.Title)
}

func TestFindSimilar_VerbatimBoost(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	sources := []*core.SourceRecord{
		{
			Title:    "t1",
			FullText: "machine learning is fascinating", // contains both query words
			Vector:   []float32{0.9, 0.1, 0.0},
		},
		{
			Title:    "t2",
			FullText: "AI will shape the future",
			Vector:   []float32{0.9, 0.1, 0.0}, // same vector, different text
		},
	}

	added, err := sourceRepo.AddSources(ctx, sources...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	mockEmbedder := mock.NewMockEmbedder()
	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.9, 0.1, 0.0}, nil
	}
	mockProvider := mock.NewMockProviderWithServices(mock.NewMockLanguageModel(), mockEmbedder)

	searcher, err := NewSearcher(sourceRepo, mockProvider)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "machine learning", 10)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Contains(t, results[0].Source.FullText, "machine learning")
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.InDelta(t, verbatimBoost, results[0].Score-results[1].Score, 0.0001)
}

func TestFindSimilar_TitleMatchBoosts(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	sources := []*core.SourceRecord{
		{
			Title:    "Kubernetes networking",
			FullText: "Pods talk over a flat address space",
			Vector:   []float32{0.9, 0.1, 0.0},
		},
		{
			Title:    "Unrelated title",
			FullText: "Nothing matching here either",
			Vector:   []float32{0.9, 0.1, 0.0},
		},
	}

	_, err = sourceRepo.AddSources(ctx, sources...)
	require.NoError(t, err)

	mockEmbedder := mock.NewMockEmbedder()
	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.9, 0.1, 0.0}, nil
	}
	mockProvider := mock.NewMockProviderWithServices(mock.NewMockLanguageModel(), mockEmbedder)

	searcher, err := NewSearcher(sourceRepo, mockProvider)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "kubernetes networking", 10)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Kubernetes networking", results[0].Source.Title)
}

func TestFindSimilar_WithMaxHits(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	sources := make([]*core.SourceRecord, 10)
	for i := 0; i < 10; i++ {
		sources[i] = &core.SourceRecord{
			Title:    "Test source",
			FullText: "Test content",
			Vector:   []float32{0.9, 0.1, 0.0},
		}
	}

	_, err = sourceRepo.AddSources(ctx, sources...)
	require.NoError(t, err)

	mockEmbedder := mock.NewMockEmbedder()
	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.9, 0.1, 0.0}, nil
	}
	mockProvider := mock.NewMockProviderWithServices(mock.NewMockLanguageModel(), mockEmbedder)

	searcher, err := NewSearcher(sourceRepo, mockProvider)
	require.NoError(t, err)

	results, err := searcher.FindSimilar(ctx, "query", 5)
	require.NoError(t, err)

	assert.Len(t, results, 5)
}

func TestFindSimilarWithMonitor(t *testing.T) {
	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	sources := []*core.SourceRecord{
		{
			Title:    "Test source",
			FullText: "test query content",
			Vector:   []float32{0.9, 0.1, 0.0},
		},
	}

	_, err = sourceRepo.AddSources(ctx, sources...)
	require.NoError(t, err)

	mockEmbedder := mock.NewMockEmbedder()
	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0.9, 0.1, 0.0}, nil
	}
	mockProvider := mock.NewMockProviderWithServices(mock.NewMockLanguageModel(), mockEmbedder)

	searcher, err := NewSearcher(sourceRepo, mockProvider)
	require.NoError(t, err)

	monitor := &testMonitor{}

	results, err := searcher.FindSimilarWithMonitor(ctx, "test query", 10, monitor)
	require.NoError(t, err)
	assert.NotEmpty(t, results)

	assert.True(t, monitor.startCalled)
	assert.True(t, monitor.semanticCalled)
	assert.True(t, monitor.verbatimCalled)
	assert.True(t, monitor.finishCalled)
}

// testMonitor is a simple test implementation of SearchMonitor
type testMonitor struct {
	startCalled    bool
	semanticCalled bool
	verbatimCalled bool
	finishCalled   bool
}

func (m *testMonitor) Start(query string) {
	m.startCalled = true
}

func (m *testMonitor) AfterSemanticSearch(matches []*core.SearchResult) {
	m.semanticCalled = true
}

func (m *testMonitor) VerbatimHit(source *core.SourceRecord) {
	m.verbatimCalled = true
}

func (m *testMonitor) Finish(results []*core.SearchResult) {
	m.finishCalled = true
}

func TestContainsAllQueryWords(t *testing.T) {
	tests := []struct {
		name     string
		document string
		query    string
		want     bool
	}{
		{"all words present", "machine learning is fascinating", "machine learning", true},
		{"missing word", "machine intelligence", "machine learning", false},
		{"stop words ignored", "learning about machines", "the learning", true},
		{"punctuation trimmed", "Learning, machines!", "learning machines", true},
		{"empty query after filtering", "anything at all", "the a an", false},
		{"case insensitive", "MACHINE LEARNING", "machine learning", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsAllQueryWords(tt.document, tt.query))
		})
	}
}
