package engines

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	dslipak "github.com/dslipak/pdf"
	"github.com/tmc/langchaingo/documentloaders"
)

// PDFConverter extracts text from PDF documents, local or remote.
// It implements extract.PDFExtractor with two engine generations: the rich
// tier uses the langchaingo page-structured loader, the legacy tier reads
// plain text directly from the PDF content streams.
type PDFConverter struct {
	client *http.Client
}

// NewPDFConverter wires an HTTP client for remote documents; a nil client
// gets a 30 second timeout default.
func NewPDFConverter(client *http.Client) *PDFConverter {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &PDFConverter{client: client}
}

// ExtractRich extracts page-structured text.
func (p *PDFConverter) ExtractRich(ctx context.Context, pathOrURL string) (string, error) {
	data, err := p.readAll(ctx, pathOrURL)
	if err != nil {
		return "", err
	}

	reader := bytes.NewReader(data)
	docs, err := documentloaders.NewPDF(reader, int64(len(data))).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	return joinDocuments(docs), nil
}

// ExtractLegacy extracts unstructured plain text.
func (p *PDFConverter) ExtractLegacy(ctx context.Context, pathOrURL string) (string, error) {
	data, err := p.readAll(ctx, pathOrURL)
	if err != nil {
		return "", err
	}

	reader, err := dslipak.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, text); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}

// readAll loads the document bytes from a local path or a URL.
func (p *PDFConverter) readAll(ctx context.Context, pathOrURL string) ([]byte, error) {
	if !strings.HasPrefix(pathOrURL, "http://") && !strings.HasPrefix(pathOrURL, "https://") {
		data, err := os.ReadFile(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("read pdf file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s for %s", resp.Status, pathOrURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}
