package badger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (storage.SourceRepository, storage.CollectionRepository) {
	t.Helper()
	sourceRepo, collectionRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		sourceRepo.Close()
		collectionRepo.Close()
		backend.Close()
	})
	return sourceRepo, collectionRepo
}

func newSource(title, text string) *core.SourceRecord {
	return &core.SourceRecord{
		Title:    title,
		FullText: text,
		Asset:    core.Asset{Kind: "pasted_text"},
	}
}

func TestSourceRepository_AddAndGet(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddSources(ctx, newSource("First", "content one"), newSource("Second", "content two"))
	require.NoError(t, err)
	require.Len(t, added, 2)

	assert.NotZero(t, added[0].Id)
	assert.NotZero(t, added[1].Id)
	assert.NotEqual(t, added[0].Id, added[1].Id)
	assert.False(t, added[0].InsertedAt.IsZero())

	got, err := repo.GetSource(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, "content one", got.FullText)
}

func TestSourceRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepos(t)

	_, err := repo.GetSource(context.Background(), core.ID(9999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSourceRepository_Update(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddSources(ctx, newSource("Title", "text"))
	require.NoError(t, err)

	record := added[0]
	record.Title = "Renamed"
	_, err = repo.UpdateSources(ctx, record)
	require.NoError(t, err)

	got, err := repo.GetSource(ctx, record.Id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, got.UpdatedAt.After(got.InsertedAt) || got.UpdatedAt.Equal(got.InsertedAt))
}

func TestSourceRepository_UpdateMissing(t *testing.T) {
	repo, _ := newTestRepos(t)

	missing := newSource("T", "x")
	missing.Id = core.ID(12345)
	_, err := repo.UpdateSources(context.Background(), missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSourceRepository_Delete(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddSources(ctx, newSource("T", "x"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteSources(ctx, added[0].Id))

	_, err = repo.GetSource(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSourceRepository_AppendInsight(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddSources(ctx, newSource("T", "x"))
	require.NoError(t, err)
	id := added[0].Id

	updated, err := repo.AppendInsight(ctx, id, core.Insight{Kind: "Summary", Content: "short version"})
	require.NoError(t, err)
	require.Len(t, updated.Insights, 1)

	updated, err = repo.AppendInsight(ctx, id, core.Insight{Kind: "Key Points", Content: "points"})
	require.NoError(t, err)
	require.Len(t, updated.Insights, 2)
	assert.Equal(t, "Summary", updated.Insights[0].Kind)
	assert.Equal(t, "Key Points", updated.Insights[1].Kind)
}

func TestSourceRepository_AppendInsight_Concurrent(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddSources(ctx, newSource("T", "x"))
	require.NoError(t, err)
	id := added[0].Id

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AppendInsight(ctx, id, core.Insight{
				Kind:    "Note",
				Content: fmt.Sprintf("insight %d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetSource(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Insights, n)
}

func TestSourceRepository_ListSources(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repo.AddSources(ctx, newSource("A", "1"), newSource("B", "2"), newSource("C", "3"))
	require.NoError(t, err)

	var titles []string
	err = repo.ListSources(ctx, func(record *core.SourceRecord) error {
		titles = append(titles, record.Title)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, titles)
}

func TestBackend_FindSimilar(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	near := newSource("near", "x")
	near.Vector = []float32{1, 0, 0}
	far := newSource("far", "y")
	far.Vector = []float32{0, 1, 0}
	unembedded := newSource("unembedded", "z")

	_, err := repo.AddSources(ctx, near, far, unembedded)
	require.NoError(t, err)

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].Source.Title)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
}

func TestBackend_FindSimilar_Limit(t *testing.T) {
	repo, _ := newTestRepos(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s := newSource(fmt.Sprintf("s%d", i), "x")
		s.Vector = []float32{1, 0, 0}
		_, err := repo.AddSources(ctx, s)
		require.NoError(t, err)
	}

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
