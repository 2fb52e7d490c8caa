package reembed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
	"github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.SourceRepository {
	t.Helper()

	sourceRepo, collectionRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
	})

	return sourceRepo
}

func seedSources(t *testing.T, repo storage.SourceRepository, n int) []*core.SourceRecord {
	t.Helper()

	sources := make([]*core.SourceRecord, n)
	for i := 0; i < n; i++ {
		sources[i] = &core.SourceRecord{
			Title:    fmt.Sprintf("source %d", i),
			FullText: fmt.Sprintf("content for source %d", i),
			Vector:   []float32{0.1, 0.2, 0.3},
		}
	}

	added, err := repo.AddSources(context.Background(), sources...)
	require.NoError(t, err)
	require.Len(t, added, n)
	return added
}

func TestSourceIterator_EmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)
	iterator := NewSourceIterator(repo, 10)

	calls := 0
	err := iterator.ForEach(context.Background(), func([]*core.SourceRecord) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestSourceIterator_BatchesAndTrailingPartial(t *testing.T) {
	repo := newTestRepo(t)
	seedSources(t, repo, 25)

	iterator := NewSourceIterator(repo, 10)

	var batchSizes []int
	total := 0
	err := iterator.ForEach(context.Background(), func(batch []*core.SourceRecord) error {
		batchSizes = append(batchSizes, len(batch))
		total += len(batch)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 5}, batchSizes)
	assert.Equal(t, 25, total)
}

func TestSourceIterator_StopsOnCallbackError(t *testing.T) {
	repo := newTestRepo(t)
	seedSources(t, repo, 30)

	iterator := NewSourceIterator(repo, 10)

	boom := errors.New("stop here")
	calls := 0
	err := iterator.ForEach(context.Background(), func([]*core.SourceRecord) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestSourceIterator_DefaultBatchSize(t *testing.T) {
	repo := newTestRepo(t)

	iterator := NewSourceIterator(repo, 0)
	assert.Equal(t, DefaultBatchSize, iterator.batchSize)

	iterator = NewSourceIterator(repo, -5)
	assert.Equal(t, DefaultBatchSize, iterator.batchSize)
}

func TestSourceIterator_Count(t *testing.T) {
	repo := newTestRepo(t)
	seedSources(t, repo, 7)

	iterator := NewSourceIterator(repo, 3)

	count, err := iterator.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
