// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

const (
	// DefaultBatchSize is the default number of sources to process in each batch
	DefaultBatchSize = 100
)

// SourceIterator walks all stored sources in batches.
type SourceIterator struct {
	repo      storage.SourceRepository
	batchSize int
}

// NewSourceIterator creates a new source iterator.
// batchSize: number of sources to buffer in each batch (must be > 0)
func NewSourceIterator(repo storage.SourceRepository, batchSize int) *SourceIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &SourceIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach streams all sources, calling fn once per full or trailing batch.
// Iteration stops on the first error from fn. Context cancellation is
// surfaced by the underlying repository walk.
func (it *SourceIterator) ForEach(ctx context.Context, fn func([]*core.SourceRecord) error) error {
	batch := make([]*core.SourceRecord, 0, it.batchSize)

	err := it.repo.ListSources(ctx, func(source *core.SourceRecord) error {
		batch = append(batch, source)
		if len(batch) < it.batchSize {
			return nil
		}

		if err := fn(batch); err != nil {
			return err
		}
		batch = make([]*core.SourceRecord, 0, it.batchSize)
		return nil
	})
	if err != nil {
		return err
	}

	// Flush the trailing partial batch.
	if len(batch) > 0 {
		return fn(batch)
	}

	return nil
}

// Count returns the number of stored sources.
func (it *SourceIterator) Count(ctx context.Context) (int, error) {
	count := 0
	err := it.repo.ListSources(ctx, func(*core.SourceRecord) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
