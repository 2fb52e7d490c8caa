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
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// sitemapDirective matches the robots.txt sitemap declaration.
var sitemapDirective = regexp.MustCompile(`(?i)^\s*sitemap:\s*(\S+)`)

// skippedExtensions are address suffixes that never identify a crawlable page.
var skippedExtensions = []string{".xml", ".txt", ".jpg", ".png", ".pdf"}

// DiscoverPages resolves the candidate page set for a site root.
//
// It reads sitemap locations from robots.txt and the conventional
// /sitemap.xml path, expands nested sitemap indices one level deep, filters
// out non-page extensions, de-duplicates, and truncates to maxPages in
// discovery order. maxPages <= 0 means no cap.
func (c *Crawler) DiscoverPages(ctx context.Context, root string, maxPages int) ([]string, error) {
	base, err := url.Parse(root)
	if err != nil {
		return nil, fmt.Errorf("parse root url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	sitemaps := c.robotsSitemaps(ctx, base)
	sitemaps = appendUnique(sitemaps, base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String())

	seen := make(map[string]struct{})
	pages := make([]string, 0)

	addCandidate := func(loc string) {
		if !crawlablePage(loc) {
			return
		}
		if _, ok := seen[loc]; ok {
			return
		}
		seen[loc] = struct{}{}
		pages = append(pages, loc)
	}

	for _, sitemap := range sitemaps {
		locs, err := c.fetchLocs(ctx, sitemap)
		if err != nil {
			c.logger.Debug("sitemap fetch failed", "sitemap", sitemap, "err", err)
			continue
		}

		for _, loc := range locs {
			if strings.HasSuffix(strings.ToLower(loc), ".xml") {
				// Nested sitemap index, expanded one level only.
				nested, err := c.fetchLocs(ctx, loc)
				if err != nil {
					c.logger.Debug("nested sitemap fetch failed", "sitemap", loc, "err", err)
					continue
				}
				for _, nestedLoc := range nested {
					addCandidate(nestedLoc)
				}
				continue
			}
			addCandidate(loc)
		}
	}

	if maxPages > 0 && len(pages) > maxPages {
		pages = pages[:maxPages]
	}

	c.logger.Info("discovered pages", "root", root, "count", len(pages))
	return pages, nil
}

// robotsSitemaps reads sitemap locations declared in the site's robots.txt.
func (c *Crawler) robotsSitemaps(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"}).String()

	body, err := c.fetch(ctx, robotsURL)
	if err != nil {
		c.logger.Debug("robots.txt fetch failed", "url", robotsURL, "err", err)
		return nil
	}

	var sitemaps []string
	for _, line := range strings.Split(string(body), "\n") {
		if m := sitemapDirective.FindStringSubmatch(line); m != nil {
			sitemaps = appendUnique(sitemaps, m[1])
		}
	}
	return sitemaps
}

// fetchLocs downloads a sitemap document and returns its <loc> entries.
func (c *Crawler) fetchLocs(ctx context.Context, sitemapURL string) ([]string, error) {
	body, err := c.fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	return parseLocs(body)
}

// parseLocs extracts the text of every <loc> element in a sitemap or
// sitemap index document.
func parseLocs(body []byte) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(body)))

	var locs []string
	var inLoc bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sitemap xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			inLoc = t.Name.Local == "loc"
		case xml.EndElement:
			inLoc = false
		case xml.CharData:
			if inLoc {
				if loc := strings.TrimSpace(string(t)); loc != "" {
					locs = append(locs, loc)
				}
			}
		}
	}
	return locs, nil
}

func (c *Crawler) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s for %s", resp.Status, rawURL)
	}

	return io.ReadAll(resp.Body)
}

// crawlablePage reports whether an address looks like a content page.
func crawlablePage(loc string) bool {
	lower := strings.ToLower(loc)
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	return true
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
