package engines

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/curator/extract"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// FileLoader reads local documents into plain text using langchaingo
// document loaders. It implements extract.FileLoader.
type FileLoader struct{}

// NewFileLoader creates a file loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// LoadFile extracts text from an arbitrary document as a single block.
func (l *FileLoader) LoadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	docs, err := documentloaders.NewText(f).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load text: %w", err)
	}
	return joinDocuments(docs), nil
}

// LoadCSVRows extracts a CSV file row by row, one line of text per record.
func (l *FileLoader) LoadCSVRows(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	docs, err := documentloaders.NewCSV(f).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load csv: %w", err)
	}
	return joinDocuments(docs), nil
}

// ConvertRich is the slot for a structured document converter. No local
// engine ships with curator, so callers fall through to the next tier.
func (l *FileLoader) ConvertRich(ctx context.Context, path string) (string, error) {
	return "", &extract.NotConfiguredError{Capability: "rich document conversion"}
}

func joinDocuments(docs []schema.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.PageContent) != "" {
			parts = append(parts, doc.PageContent)
		}
	}
	return strings.Join(parts, "\n\n")
}
