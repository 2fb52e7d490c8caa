package ingestion

import (
	"context"

	"github.com/poiesic/curator/extract"
)

// stage converts the request into an ordered queue of extraction outcomes.
// Single descriptors become a one-element queue; crawl roots fan out through
// the crawler and are queued in discovery order. Entries may be nil, which
// the persistence loop treats as skip markers.
func (p *Pipeline) stage(ctx context.Context, req Request, result *Result) []*extract.ContentState {
	if req.Descriptor != nil {
		state := p.extractor.Extract(ctx, *req.Descriptor)
		tagStateOrigin(&state, req.Descriptor.URL, req.Descriptor.FilePath)
		return []*extract.ContentState{&state}
	}

	if p.crawler == nil {
		result.ItemErrors = append(result.ItemErrors, ItemError{
			Item:  req.CrawlRoot,
			Stage: "extract",
			Err:   ErrCrawlerNotConfigured,
		})
		return nil
	}

	pages, err := p.crawler.Crawl(ctx, req.CrawlRoot, req.MaxPages)
	if err != nil {
		result.ItemErrors = append(result.ItemErrors, ItemError{
			Item:  req.CrawlRoot,
			Stage: "extract",
			Err:   err,
		})
		return nil
	}

	queue := make([]*extract.ContentState, 0, len(pages))
	for _, page := range pages {
		state := &extract.ContentState{
			Content:        page.Content,
			Title:          page.Title,
			SourceKind:     extract.KindURL,
			IdentifiedType: "webpage",
		}
		tagStateOrigin(state, page.URL, "")
		queue = append(queue, state)
	}
	return queue
}

// tagStateOrigin records where an item came from so persistence can build
// the source's asset descriptor.
func tagStateOrigin(state *extract.ContentState, url, filePath string) {
	if url == "" && filePath == "" {
		return
	}
	if state.Metadata == nil {
		state.Metadata = make(map[string]string)
	}
	if url != "" {
		state.Metadata["url"] = url
	}
	if filePath != "" {
		state.Metadata["file_path"] = filePath
	}
}
