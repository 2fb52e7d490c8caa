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


package crawl

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const userAgent = "curator/1.0"

// Page is one successfully extracted site page.
type Page struct {
	URL     string
	Title   string
	Content string
}

// Fetcher retrieves page content and titles. It matches the web fetching
// capability of the extract toolkit.
type Fetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
	FetchTitle(ctx context.Context, url string) (string, error)
}

// Crawler discovers a site's pages through its sitemaps and extracts them
// concurrently.
type Crawler struct {
	client  *http.Client
	fetcher Fetcher
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler) error

// WithHTTPClient sets the client used for robots.txt and sitemap fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Crawler) error {
		if client != nil {
			c.client = client
		}
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent page extraction.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *Crawler) error {
		if size < 1 {
			size = 1
		}
		if c.pool != nil {
			c.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		c.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) error {
		if logger != nil {
			c.logger = logger.With("component", "crawler")
		}
		return nil
	}
}

// NewCrawler creates a crawler that extracts pages through fetcher.
func NewCrawler(fetcher Fetcher, opts ...Option) (*Crawler, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	c := &Crawler{
		client:  &http.Client{Timeout: 20 * time.Second},
		fetcher: fetcher,
		pool:    pool,
		logger:  slog.Default().With("component", "crawler"),
	}

	for _, opt := range opts {
		if optErr := opt(c); optErr != nil {
			c.Release()
			return nil, optErr
		}
	}

	return c, nil
}

// Crawl discovers up to maxPages pages under root and extracts them all
// concurrently. Results keep discovery order. A failing page is logged and
// dropped; it never fails the batch.
func (c *Crawler) Crawl(ctx context.Context, root string, maxPages int) ([]Page, error) {
	urls, err := c.DiscoverPages(ctx, root, maxPages)
	if err != nil {
		return nil, err
	}

	// Indexed slots keep discovery order without coordination between tasks.
	results := make([]*Page, len(urls))
	var wg sync.WaitGroup

	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		wg.Add(1)
		err := c.pool.Submit(func() {
			defer wg.Done()
			page, err := c.extractPage(ctx, pageURL)
			if err != nil {
				c.logger.Warn("page extraction failed", "url", pageURL, "err", err)
				return
			}
			results[i] = page
		})
		if err != nil {
			wg.Done()
			c.logger.Warn("failed to submit page task", "url", pageURL, "err", err)
		}
	}

	wg.Wait()

	pages := make([]Page, 0, len(results))
	for _, page := range results {
		if page != nil {
			pages = append(pages, *page)
		}
	}

	c.logger.Info("crawl complete", "root", root, "discovered", len(urls), "extracted", len(pages))
	return pages, nil
}

func (c *Crawler) extractPage(ctx context.Context, pageURL string) (*Page, error) {
	content, err := c.fetcher.FetchContent(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	title, err := c.fetcher.FetchTitle(ctx, pageURL)
	if err != nil || title == "" {
		title = pageURL
	}

	return &Page{URL: pageURL, Title: title, Content: content}, nil
}

// Release releases the worker pool. The crawler should not be used after
// calling Release.
func (c *Crawler) Release() {
	if c.pool != nil {
		c.pool.Release()
	}
}
