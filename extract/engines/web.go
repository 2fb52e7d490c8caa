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


package engines

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "curator/1.0"

// nonContentSelectors lists elements stripped before extracting body text.
const nonContentSelectors = "script, style, nav, header, footer"

// WebClient fetches webpage content and titles over HTTP.
// It implements extract.WebFetcher.
type WebClient struct {
	client *http.Client
}

// NewWebClient wires an HTTP client; a nil client gets a 20 second timeout default.
func NewWebClient(client *http.Client) *WebClient {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &WebClient{client: client}
}

// FetchContent returns the readable text of the page at url.
// Prefers <article> content; falls back to <body> with non-content
// elements stripped.
func (w *WebClient) FetchContent(ctx context.Context, url string) (string, error) {
	doc, err := w.fetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	article := doc.Find("article").First()
	if article.Length() > 0 {
		article.Find(nonContentSelectors).Remove()
		return strings.TrimSpace(article.Text()), nil
	}

	body := doc.Find("body").First()
	if body.Length() > 0 {
		body.Find(nonContentSelectors).Remove()
		return strings.TrimSpace(body.Text()), nil
	}

	return "", nil
}

// FetchTitle returns the page title, preferring <title> then og:title.
func (w *WebClient) FetchTitle(ctx context.Context, url string) (string, error) {
	doc, err := w.fetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}

	if ogTitle, exists := doc.Find("meta[property='og:title']").Attr("content"); exists {
		return strings.TrimSpace(ogTitle), nil
	}

	return "", nil
}

func (w *WebClient) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s for %s", resp.Status, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
