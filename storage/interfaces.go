package storage

import (
	"context"

	"github.com/poiesic/curator/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds sources similar to the given vector.
	// Returns sources with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SourceRepository provides operations for managing source records.
type SourceRepository interface {
	Repository
	// AddSources adds one or more source records to storage.
	// Generates new IDs from sequence and sets the InsertedAt timestamp.
	// Returns the records with generated IDs and timestamps populated.
	AddSources(ctx context.Context, sources ...*core.SourceRecord) ([]*core.SourceRecord, error)

	// UpdateSources updates existing source records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateSources(ctx context.Context, sources ...*core.SourceRecord) ([]*core.SourceRecord, error)

	// DeleteSources removes source records by their IDs.
	// Also removes associated collection links.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteSources(ctx context.Context, ids ...core.ID) error

	// GetSource retrieves a single source record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetSource(ctx context.Context, id core.ID) (*core.SourceRecord, error)

	// GetSources retrieves multiple source records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetSources(ctx context.Context, ids ...core.ID) ([]*core.SourceRecord, error)

	// ListSources walks every stored source record in key order.
	// Iteration stops at the first error returned by fn.
	ListSources(ctx context.Context, fn func(*core.SourceRecord) error) error

	// AppendInsight appends an insight to a source record.
	// Safe for concurrent use: appends to the same source are serialized.
	// Returns ErrNotFound if the record doesn't exist.
	AppendInsight(ctx context.Context, id core.ID, insight core.Insight) (*core.SourceRecord, error)
}

// CollectionRepository provides operations for managing collections of sources.
type CollectionRepository interface {
	Repository
	// AddCollection adds a collection to storage.
	// Generates a new ID from sequence and sets the InsertedAt timestamp.
	AddCollection(ctx context.Context, collection *core.Collection) (*core.Collection, error)

	// GetCollection retrieves a single collection by ID.
	// Returns ErrNotFound if the collection doesn't exist.
	GetCollection(ctx context.Context, id core.ID) (*core.Collection, error)

	// ListCollections returns all stored collections.
	ListCollections(ctx context.Context) ([]*core.Collection, error)

	// LinkSource links a source to a collection. Idempotent: linking the
	// same pair twice leaves a single link.
	LinkSource(ctx context.Context, collectionID, sourceID core.ID) error

	// GetCollectionSources returns the IDs of sources linked to a collection,
	// in link order.
	GetCollectionSources(ctx context.Context, collectionID core.ID) ([]core.ID, error)
}
