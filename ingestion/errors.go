package ingestion

import "errors"

var (
	// ErrSourceRepositoryRequired is returned when a source repository is not provided.
	ErrSourceRepositoryRequired = errors.New("source repository required")

	// ErrCollectionRepositoryRequired is returned when a collection repository is not provided.
	ErrCollectionRepositoryRequired = errors.New("collection repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrCollectionRequired is a configuration error: every run must name the
	// collection that saved sources are linked to.
	ErrCollectionRequired = errors.New("parent collection id required")

	// ErrNoInput is a configuration error: a run needs a descriptor or a
	// crawl root.
	ErrNoInput = errors.New("request needs a content descriptor or a crawl root")

	// ErrCrawlerNotConfigured indicates a crawl-root request on a pipeline
	// built without a crawler.
	ErrCrawlerNotConfigured = errors.New("no crawler configured")
)
