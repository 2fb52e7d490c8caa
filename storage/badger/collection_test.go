package badger

import (
	"context"
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepository_AddAndGet(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	added, err := repo.AddCollection(ctx, &core.Collection{Name: "research"})
	require.NoError(t, err)
	require.NotZero(t, added.Id)

	got, err := repo.GetCollection(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, "research", got.Name)
}

func TestCollectionRepository_AddRejectsEmptyName(t *testing.T) {
	_, repo := newTestRepos(t)

	_, err := repo.AddCollection(context.Background(), &core.Collection{})
	assert.ErrorIs(t, err, core.ErrEmptyCollectionName)
}

func TestCollectionRepository_GetMissing(t *testing.T) {
	_, repo := newTestRepos(t)

	_, err := repo.GetCollection(context.Background(), core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCollectionRepository_ListCollections(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	_, err := repo.AddCollection(ctx, &core.Collection{Name: "one"})
	require.NoError(t, err)
	_, err = repo.AddCollection(ctx, &core.Collection{Name: "two"})
	require.NoError(t, err)

	collections, err := repo.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 2)

	names := []string{collections[0].Name, collections[1].Name}
	assert.ElementsMatch(t, []string{"one", "two"}, names)
}

func TestCollectionRepository_LinkSource_Idempotent(t *testing.T) {
	sourceRepo, repo := newTestRepos(t)
	ctx := context.Background()

	collection, err := repo.AddCollection(ctx, &core.Collection{Name: "c"})
	require.NoError(t, err)

	sources, err := sourceRepo.AddSources(ctx, newSource("s", "text"))
	require.NoError(t, err)
	sourceID := sources[0].Id

	// Linking the same pair twice must not duplicate the link.
	require.NoError(t, repo.LinkSource(ctx, collection.Id, sourceID))
	require.NoError(t, repo.LinkSource(ctx, collection.Id, sourceID))

	linked, err := repo.GetCollectionSources(ctx, collection.Id)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{sourceID}, linked)
}

func TestCollectionRepository_LinkSource_MissingCollection(t *testing.T) {
	_, repo := newTestRepos(t)

	err := repo.LinkSource(context.Background(), core.ID(404), core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCollectionRepository_GetCollectionSources_Isolated(t *testing.T) {
	sourceRepo, repo := newTestRepos(t)
	ctx := context.Background()

	c1, err := repo.AddCollection(ctx, &core.Collection{Name: "c1"})
	require.NoError(t, err)
	c2, err := repo.AddCollection(ctx, &core.Collection{Name: "c2"})
	require.NoError(t, err)

	sources, err := sourceRepo.AddSources(ctx, newSource("a", "1"), newSource("b", "2"))
	require.NoError(t, err)

	require.NoError(t, repo.LinkSource(ctx, c1.Id, sources[0].Id))
	require.NoError(t, repo.LinkSource(ctx, c2.Id, sources[1].Id))

	linked1, err := repo.GetCollectionSources(ctx, c1.Id)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{sources[0].Id}, linked1)

	linked2, err := repo.GetCollectionSources(ctx, c2.Id)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{sources[1].Id}, linked2)
}
