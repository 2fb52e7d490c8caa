package engines

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/curator/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// MultimodalCaptioner describes images with a vision-capable chat model.
// It implements extract.Captioner.
type MultimodalCaptioner struct {
	client    llms.Model
	maxTokens int
}

// NewMultimodalCaptioner creates a captioner against the configured chat host.
// The chat model must accept image parts.
func NewMultimodalCaptioner(config *ai.Config) (*MultimodalCaptioner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &MultimodalCaptioner{
		client:    client,
		maxTokens: config.MaxOutputTokens,
	}, nil
}

// Caption reads the image at path and asks the model to describe it.
func (c *MultimodalCaptioner) Caption(ctx context.Context, path, prompt, mime string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
				llms.BinaryPart(mime, data),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, messages, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("caption image: %w", err)
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("caption image: model returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
