package extract

import (
	"context"
	"strings"
)

// extractURL handles general web addresses.
//
// PDF URLs bypass the webpage path: the document tiers run directly and the
// content filter is never applied to raw PDF bytes. HTML pages are fetched,
// optionally filtered by the language model, and titled from the page itself.
func (e *Extractor) extractURL(ctx context.Context, desc ContentDescriptor) ContentState {
	if strings.HasSuffix(strings.ToLower(desc.URL), ".pdf") {
		return e.extractPDFURL(ctx, desc)
	}
	return e.extractWebpage(ctx, desc)
}

func (e *Extractor) extractPDFURL(ctx context.Context, desc ContentDescriptor) ContentState {
	state := ContentState{IdentifiedType: "pdf"}

	state.Title = desc.Title
	if state.Title == "" && e.tools.Web != nil {
		if title, err := e.tools.Web.FetchTitle(ctx, desc.URL); err == nil && title != "" {
			state.Title = title
		}
	}
	if state.Title == "" {
		state.Title = desc.URL
	}

	if e.tools.PDF == nil {
		state.Err = &NotConfiguredError{Capability: "pdf extraction"}
		return state
	}

	content, err := runTiers(ctx, []tier{
		{name: "rich", run: func(ctx context.Context) (string, error) {
			return e.tools.PDF.ExtractRich(ctx, desc.URL)
		}},
		{name: "legacy", run: func(ctx context.Context) (string, error) {
			return e.tools.PDF.ExtractLegacy(ctx, desc.URL)
		}},
	})
	state.Content = content
	state.Err = err
	return state
}

func (e *Extractor) extractWebpage(ctx context.Context, desc ContentDescriptor) ContentState {
	state := ContentState{IdentifiedType: "webpage"}

	if e.tools.Web == nil {
		state.Err = &NotConfiguredError{Capability: "web fetch"}
		return state
	}

	content, err := e.tools.Web.FetchContent(ctx, desc.URL)
	if err != nil {
		state.Err = err
		return state
	}

	if desc.ApplyContentFilter && e.tools.Filter != nil {
		filtered, err := e.tools.Filter.Filter(ctx, content)
		if err != nil {
			// Filtering is best-effort; keep the unfiltered page.
			e.logger.Warn("content filter failed, keeping raw content", "url", desc.URL, "err", err)
		} else if strings.TrimSpace(filtered) != "" {
			content = filtered
		}
	}

	state.Content = content
	if strings.TrimSpace(content) == "" {
		state.Err = ErrEmptyPage
	}

	state.Title = desc.Title
	if state.Title == "" {
		if title, err := e.tools.Web.FetchTitle(ctx, desc.URL); err == nil && title != "" {
			state.Title = title
		} else {
			state.Title = desc.URL
		}
	}

	return state
}
