package badger

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// SourceRepository implements storage.SourceRepository for BadgerDB.
type SourceRepository struct {
	backend *Backend
	idSeq   *badger.Sequence

	// Serializes read-modify-write insight appends; BadgerDB would abort
	// one of two conflicting transactions on the same key.
	insightMu sync.Mutex
}

var _ storage.SourceRepository = (*SourceRepository)(nil)

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository(backend *Backend) (*SourceRepository, error) {
	idSeq, err := backend.GetSequence(sourceRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &SourceRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *SourceRepository) Close() error {
	return r.idSeq.Release()
}

// FindSimilar delegates to the backend.
func (r *SourceRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *SourceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSources adds one or more source records to storage.
func (r *SourceRepository) AddSources(ctx context.Context, sources ...*core.SourceRecord) ([]*core.SourceRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range sources {
			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			record.Id = core.ID(nextID)

			record.InsertedAt = time.Now().UTC()
			record.UpdatedAt = record.InsertedAt

			key := makeSourceKey(record.Id)
			value := storage.MarshalSourceRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return sources, err
}

// UpdateSources updates existing source records.
func (r *SourceRepository) UpdateSources(ctx context.Context, sources ...*core.SourceRecord) ([]*core.SourceRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range sources {
			key := makeSourceKey(record.Id)

			old, err := r.readSource(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			record.UpdatedAt = time.Now().UTC()

			value := storage.MarshalSourceRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return sources, err
}

// DeleteSources removes source records by their IDs.
func (r *SourceRepository) DeleteSources(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSourceKey(id)

			record, err := r.readSource(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSource retrieves a single source record by ID.
func (r *SourceRepository) GetSource(ctx context.Context, id core.ID) (*core.SourceRecord, error) {
	var result *core.SourceRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSourceKey(id)
		var err error
		result, err = r.readSource(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSources retrieves multiple source records by their IDs.
func (r *SourceRepository) GetSources(ctx context.Context, ids ...core.ID) ([]*core.SourceRecord, error) {
	var result []*core.SourceRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSourceKey(id)
			record, err := r.readSource(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListSources walks every stored source record in key order.
func (r *SourceRepository) ListSources(ctx context.Context, fn func(*core.SourceRecord) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sourceRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := iter.Item()
			if string(item.Key()) == sourceRecordIDSeq {
				continue
			}

			var record *core.SourceRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalSourceRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}

			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// AppendInsight appends an insight to a source record.
func (r *SourceRepository) AppendInsight(ctx context.Context, id core.ID, insight core.Insight) (*core.SourceRecord, error) {
	r.insightMu.Lock()
	defer r.insightMu.Unlock()

	var result *core.SourceRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSourceKey(id)

		record, err := r.readSource(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		record.Insights = append(record.Insights, insight)
		record.UpdatedAt = time.Now().UTC()

		value := storage.MarshalSourceRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		result = record
		return tx.Commit()
	}, true)

	return result, err
}

// readSource reads a source record by key. Returns nil if not found.
func (r *SourceRepository) readSource(tx *badger.Txn, key []byte) (*core.SourceRecord, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record *core.SourceRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalSourceRecord(val)
		return err
	})
	return record, err
}
