package crawl

import "errors"

var (
	// ErrFetcherRequired indicates a crawler was constructed without a fetcher.
	ErrFetcherRequired = errors.New("page fetcher is required")

	// ErrInvalidRoot indicates a crawl root that is not an absolute URL.
	ErrInvalidRoot = errors.New("crawl root must be an absolute URL")
)
