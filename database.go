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


package curator

import (
	"io"
	"log/slog"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/ai/openai"
	"github.com/poiesic/curator/crawl"
	"github.com/poiesic/curator/extract"
	"github.com/poiesic/curator/extract/engines"
	"github.com/poiesic/curator/ingestion"
	"github.com/poiesic/curator/reembed"
	"github.com/poiesic/curator/search"
	"github.com/poiesic/curator/storage"
	"github.com/poiesic/curator/storage/badger"
)

// Database bundles the storage backend, repositories, and AI provider behind
// one handle. It is the entry point library consumers build pipelines,
// searchers, and reembedders from.
type Database struct {
	backend        *badger.Backend
	sourceRepo     storage.SourceRepository
	collectionRepo storage.CollectionRepository
	provider       ai.Provider
	aiConfig       *ai.Config
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the AI service configuration used for the provider and
// the extraction engines.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemory opens the backend in memory, without touching disk.
// Intended for tests and throwaway runs.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create source repository
	sourceRepo, err := badger.NewSourceRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create collection repository
	collectionRepo, err := badger.NewCollectionRepository(backend)
	if err != nil {
		sourceRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		collectionRepo.Close()
		sourceRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:        backend,
		sourceRepo:     sourceRepo,
		collectionRepo: collectionRepo,
		provider:       provider,
		aiConfig:       options.aiConfig,
		logger:         slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.collectionRepo.Close(); err != nil {
		db.logger.Error("error closing collection repository", "err", err)
		return err
	}
	if err := db.sourceRepo.Close(); err != nil {
		db.logger.Error("error closing source repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) SourceRepository() storage.SourceRepository {
	return db.sourceRepo
}

func (db *Database) CollectionRepository() storage.CollectionRepository {
	return db.collectionRepo
}

// NewIngestionPipeline builds an ingestion pipeline wired with the default
// extraction toolkit and a site crawler sharing its web fetcher.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	toolkit, err := engines.DefaultToolkit(db.aiConfig, db.provider.LanguageModel())
	if err != nil {
		return nil, err
	}

	extractor := extract.NewExtractor(toolkit)

	crawler, err := crawl.NewCrawler(toolkit.Web)
	if err != nil {
		return nil, err
	}

	pipelineOpts := append([]ingestion.Option{ingestion.WithCrawler(crawler)}, opts...)
	return ingestion.NewPipeline(db.sourceRepo, db.collectionRepo, db.provider, extractor, pipelineOpts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.sourceRepo, db.provider, opts...)
}

// NewReembedder builds a reembedder over the stored sources.
// progress: where to write progress output (typically os.Stderr)
func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.sourceRepo, db.provider.Embedder(), config, progress)
}
