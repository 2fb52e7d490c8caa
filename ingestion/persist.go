package ingestion

import (
	"context"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/extract"
)

// persist walks the staging queue strictly sequentially and saves every
// entry that carries content. The loop is single-threaded on purpose:
// sequential persistence guarantees stable identifier assignment and avoids
// duplicate collection-link races. A failure on one item is recorded and
// treated as a skip; the loop always reaches the end of the queue.
func (p *Pipeline) persist(ctx context.Context, queue []*extract.ContentState, req Request, result *Result) []*core.SourceRecord {
	saved := make([]*core.SourceRecord, 0, len(queue))

	for i := 0; i < len(queue); i++ {
		entry := queue[i]
		if entry == nil {
			continue
		}

		if entry.Err != nil {
			result.ItemErrors = append(result.ItemErrors, ItemError{
				Item:  itemName(entry),
				Stage: "extract",
				Err:   entry.Err,
			})
		}

		// Only entries with extracted content become sources.
		if entry.Content == "" {
			continue
		}

		record, err := p.saveEntry(ctx, entry, req)
		if err != nil {
			p.logger.Error("persistence failed", "item", itemName(entry), "err", err)
			result.ItemErrors = append(result.ItemErrors, ItemError{
				Item:  itemName(entry),
				Stage: "persist",
				Err:   err,
			})
			continue
		}

		saved = append(saved, record)
		result.SavedSourceIDs = append(result.SavedSourceIDs, record.Id)
	}

	return saved
}

// saveEntry builds a source record from one extraction outcome, persists it,
// links it to the requested collection, and optionally embeds it.
func (p *Pipeline) saveEntry(ctx context.Context, entry *extract.ContentState, req Request) (*core.SourceRecord, error) {
	record := &core.SourceRecord{
		Title:    entry.Title,
		FullText: core.CleanText(entry.Content),
		Asset:    assetFor(entry),
		Metadata: entry.Metadata,
	}

	if err := core.ValidateSource(record); err != nil {
		return nil, err
	}

	if req.Embed {
		// Embedding is best-effort; a failed embedding never loses the source.
		vector, err := p.provider.Embedder().EmbedText(ctx, record.FullText)
		if err != nil {
			p.logger.Warn("embedding failed, saving without vector", "item", itemName(entry), "err", err)
		} else {
			record.Vector = vector
		}
	}

	added, err := p.sourceRepository.AddSources(ctx, record)
	if err != nil {
		return nil, err
	}
	record = added[0]

	if err := p.collectionRepository.LinkSource(ctx, req.CollectionID, record.Id); err != nil {
		return nil, err
	}

	return record, nil
}

// assetFor derives the asset descriptor from an extraction outcome.
func assetFor(entry *extract.ContentState) core.Asset {
	asset := core.Asset{
		URL:      entry.Metadata["url"],
		FilePath: entry.Metadata["file_path"],
	}

	switch entry.IdentifiedType {
	case "youtube":
		asset.Kind = "video_transcript"
	case "webpage":
		asset.Kind = "html_content"
	case "pdf":
		asset.Kind = "pdf_document"
	case "text", "":
		asset.Kind = "pasted_text"
	default:
		asset.Kind = entry.IdentifiedType
	}

	return asset
}

// itemName identifies a staged entry for error reporting.
func itemName(entry *extract.ContentState) string {
	if url, ok := entry.Metadata["url"]; ok {
		return url
	}
	if path, ok := entry.Metadata["file_path"]; ok {
		return path
	}
	if entry.Title != "" {
		return entry.Title
	}
	return entry.IdentifiedType
}
