package ingestion

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// inputMarker terminates every transformation prompt; the source text
// follows as the user message.
const inputMarker = "# INPUT"

// executor renders transformation prompts and attaches results as insights.
type executor struct {
	model               ai.LanguageModel
	sourceRepository    storage.SourceRepository
	defaultInstructions string
	maxTokens           int
	logger              *slog.Logger
}

func newExecutor(model ai.LanguageModel, sourceRepository storage.SourceRepository,
	defaultInstructions string, maxTokens int, logger *slog.Logger) *executor {
	return &executor{
		model:               model,
		sourceRepository:    sourceRepository,
		defaultInstructions: defaultInstructions,
		maxTokens:           maxTokens,
		logger:              logger.With("component", "transformation-executor"),
	}
}

// apply runs one transformation against one source. On non-empty output and
// a non-empty spec title the result is appended as an insight; the output is
// returned to the caller either way.
func (e *executor) apply(ctx context.Context, source *core.SourceRecord, spec core.TransformationSpec) (string, error) {
	output, err := e.model.GenerateText(ctx, e.prompt(spec), source.FullText, e.maxTokens)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(output) == "" || spec.Title == "" {
		e.logger.Debug("skipping insight attachment",
			"source", source.Id, "transformation", spec.Name,
			"empty_output", strings.TrimSpace(output) == "", "empty_title", spec.Title == "")
		return output, nil
	}

	if _, err := e.sourceRepository.AppendInsight(ctx, source.Id, core.Insight{
		Kind:    spec.Title,
		Content: output,
	}); err != nil {
		return output, err
	}

	return output, nil
}

// prompt concatenates the default instructions, the spec's prompt template,
// and the input marker.
func (e *executor) prompt(spec core.TransformationSpec) string {
	parts := make([]string, 0, 3)
	if e.defaultInstructions != "" {
		parts = append(parts, e.defaultInstructions)
	}
	parts = append(parts, spec.Prompt, inputMarker)
	return strings.Join(parts, "\n\n")
}
