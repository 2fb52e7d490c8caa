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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/crawl"
	"github.com/poiesic/curator/extract"
	"github.com/poiesic/curator/storage"
)

// Extractor turns one content descriptor into an extraction outcome.
type Extractor interface {
	Extract(ctx context.Context, desc extract.ContentDescriptor) extract.ContentState
}

// Crawler discovers and extracts the pages of a site.
type Crawler interface {
	Crawl(ctx context.Context, root string, maxPages int) ([]crawl.Page, error)
}

// Pipeline orchestrates extraction, persistence, and transformation of
// ingested content. Persistence is strictly sequential; transformations fan
// out over a worker pool.
type Pipeline struct {
	sourceRepository     storage.SourceRepository
	collectionRepository storage.CollectionRepository
	provider             ai.Provider
	extractor            Extractor
	crawler              Crawler
	transformPool        *ants.Pool
	defaultInstructions  string
	maxTokens            int
	logger               *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent transformation tasks.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.transformPool != nil {
			p.transformPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.transformPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithCrawler sets the crawler used for crawl-root requests.
func WithCrawler(crawler Crawler) Option {
	return func(p *Pipeline) error {
		p.crawler = crawler
		return nil
	}
}

// WithDefaultInstructions sets the instruction prefix concatenated ahead of
// every transformation prompt.
func WithDefaultInstructions(instructions string) Option {
	return func(p *Pipeline) error {
		p.defaultInstructions = instructions
		return nil
	}
}

// WithMaxOutputTokens bounds the output size of transformation completions.
func WithMaxOutputTokens(maxTokens int) Option {
	return func(p *Pipeline) error {
		if maxTokens > 0 {
			p.maxTokens = maxTokens
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	sourceRepository storage.SourceRepository,
	collectionRepository storage.CollectionRepository,
	provider ai.Provider,
	extractor Extractor,
	opts ...Option,
) (*Pipeline, error) {
	if sourceRepository == nil {
		return nil, ErrSourceRepositoryRequired
	}
	if collectionRepository == nil {
		return nil, ErrCollectionRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		sourceRepository:     sourceRepository,
		collectionRepository: collectionRepository,
		provider:             provider,
		extractor:            extractor,
		transformPool:        pool,
		maxTokens:            5000,
		logger:               slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.logger = p.logger.With("component", "ingestion-pipeline")

	return p, nil
}

// Request describes one pipeline run. Exactly one of Descriptor or CrawlRoot
// is populated.
type Request struct {
	// Descriptor names a single item to ingest.
	Descriptor *extract.ContentDescriptor

	// CrawlRoot ingests a whole site; MaxPages caps the page count
	// (0 means no cap).
	CrawlRoot string
	MaxPages  int

	// Transformations are applied to every saved source.
	Transformations []core.TransformationSpec

	// CollectionID is the parent collection saved sources are linked to.
	// Required; a zero value is a configuration error.
	CollectionID core.ID

	// Embed requests an embedding side-effect on save.
	Embed bool
}

// ItemError reports one isolated failure inside a run.
type ItemError struct {
	// Item identifies the failing input (URL, file path, or title).
	Item string
	// Stage is the pipeline stage that failed: extract, persist, or transform.
	Stage string
	// Err is the underlying failure.
	Err error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Item, e.Err)
}

// Result carries the partial, best-effort outcome of a run.
type Result struct {
	// SavedSourceIDs lists persisted sources in staging order.
	SavedSourceIDs []core.ID

	// InsightCounts maps each saved source to the number of insights attached.
	InsightCounts map[core.ID]int

	// ItemErrors lists every isolated failure encountered.
	ItemErrors []ItemError
}

// Run executes one ingestion run: stage, persist sequentially, then fan out
// transformations. Only configuration errors abort the run; everything else
// lands in Result.ItemErrors.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if req.CollectionID == 0 {
		return nil, ErrCollectionRequired
	}
	if req.Descriptor == nil && req.CrawlRoot == "" {
		return nil, ErrNoInput
	}

	// The collection must exist before any extraction begins.
	if _, err := p.collectionRepository.GetCollection(ctx, req.CollectionID); err != nil {
		return nil, fmt.Errorf("collection %d: %w", req.CollectionID, err)
	}

	result := &Result{InsightCounts: make(map[core.ID]int)}

	queue := p.stage(ctx, req, result)
	saved := p.persist(ctx, queue, req, result)
	p.transform(ctx, saved, req.Transformations, result)

	p.logger.Info("run complete",
		"staged", len(queue),
		"saved", len(result.SavedSourceIDs),
		"errors", len(result.ItemErrors))

	return result, nil
}

// transform schedules one task per (saved source, transformation spec) pair
// and joins them all before returning. Task failures are isolated.
func (p *Pipeline) transform(ctx context.Context, saved []*core.SourceRecord, specs []core.TransformationSpec, result *Result) {
	if len(saved) == 0 || len(specs) == 0 {
		return
	}

	exec := newExecutor(p.provider.LanguageModel(), p.sourceRepository,
		p.defaultInstructions, p.maxTokens, p.logger)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, source := range saved {
		for _, spec := range specs {
			source, spec := source, spec
			wg.Add(1)
			err := p.transformPool.Submit(func() {
				defer wg.Done()

				output, err := exec.apply(ctx, source, spec)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					p.logger.Error("transformation failed",
						"source", source.Id, "transformation", spec.Name, "err", err)
					result.ItemErrors = append(result.ItemErrors, ItemError{
						Item:  spec.Name,
						Stage: "transform",
						Err:   err,
					})
					return
				}
				// Same predicate the executor uses to attach an insight.
				if strings.TrimSpace(output) != "" && spec.Title != "" {
					result.InsightCounts[source.Id]++
				}
			})
			if err != nil {
				wg.Done()
				mu.Lock()
				result.ItemErrors = append(result.ItemErrors, ItemError{
					Item:  spec.Name,
					Stage: "transform",
					Err:   err,
				})
				mu.Unlock()
			}
		}
	}

	wg.Wait()
}

// Release releases the transformation worker pool, along with the crawler's
// pool when the crawler owns one.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.transformPool != nil {
		p.transformPool.Release()
	}
	if releaser, ok := p.crawler.(interface{ Release() }); ok {
		releaser.Release()
	}
}
