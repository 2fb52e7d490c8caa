package engines

import (
	"context"

	"github.com/poiesic/curator/ai"
)

// filterSystemPrompt instructs the model to keep only the substantive page
// content, dropping navigation and boilerplate.
const filterSystemPrompt = `You will receive the raw text of a webpage. ` +
	`Return only the main content of the page: the article, post, or document body. ` +
	`Remove navigation menus, cookie banners, advertisements, related-link lists, ` +
	`comment sections, and footer boilerplate. Do not summarize, rewrite, or add ` +
	`anything. Preserve the original wording and order of the content you keep.`

// ModelFilter reduces fetched page text to its relevant core using a
// language model. It implements extract.ContentFilter.
type ModelFilter struct {
	model     ai.LanguageModel
	maxTokens int
}

// NewModelFilter creates a content filter over the given language model.
func NewModelFilter(model ai.LanguageModel, maxTokens int) *ModelFilter {
	return &ModelFilter{model: model, maxTokens: maxTokens}
}

// Filter asks the model for the cleaned page content.
func (f *ModelFilter) Filter(ctx context.Context, content string) (string, error) {
	return f.model.GenerateText(ctx, filterSystemPrompt, content, f.maxTokens)
}
