package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// minSimilarity is the cosine-similarity floor below which a source is not
// considered a semantic match.
const minSimilarity = 0.60

// verbatimBoost is added to a result's score when every query word appears
// verbatim in the source text.
const verbatimBoost = 0.3

// Searcher provides semantic search over saved sources.
type Searcher struct {
	sourceRepository storage.SourceRepository
	embedder         ai.Embedder
	logger           *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	sourceRepository storage.SourceRepository,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if sourceRepository == nil {
		return nil, ErrSourceRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		sourceRepository: sourceRepository,
		embedder:         provider.Embedder(),
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for sources similar to the query.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	return s.FindSimilarWithMonitor(ctx, query, maxHits, nil)
}

// FindSimilarWithMonitor searches for sources similar to the query with
// monitoring. The monitor receives callbacks at each stage of the search.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := s.sourceRepository.FindSimilar(ctx, embedding, minSimilarity, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar sources", "err", err)
		return nil, err
	}
	monitor.AfterSemanticSearch(matches)

	results := make([]*core.SearchResult, 0, len(matches))
	for _, match := range matches {
		if match == nil || match.Source == nil {
			continue
		}

		score := match.Score
		if containsAllQueryWords(match.Source.FullText, query) ||
			containsAllQueryWords(match.Source.Title, query) {
			score += verbatimBoost
			monitor.VerbatimHit(match.Source)
		}

		results = append(results, &core.SearchResult{
			Source: match.Source,
			Score:  score,
		})
	}

	// The verbatim boost can reorder the repository's ranking.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}
