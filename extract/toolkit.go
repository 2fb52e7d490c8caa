package extract

import "context"

// Captioner describes an image in natural language.
type Captioner interface {
	// Caption produces a textual description of the image at path.
	// mime identifies the image encoding (image/png, image/jpeg, image/webp).
	Caption(ctx context.Context, path, prompt, mime string) (string, error)
}

// PDFExtractor extracts text from a PDF document, local or remote.
// Rich and Legacy are alternative engine generations used as fallback tiers.
type PDFExtractor interface {
	ExtractRich(ctx context.Context, pathOrURL string) (string, error)
	ExtractLegacy(ctx context.Context, pathOrURL string) (string, error)
}

// Transcriber converts audio or video files to text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// WebFetcher retrieves webpage content and titles.
type WebFetcher interface {
	// FetchContent returns the readable text of the page at url.
	FetchContent(ctx context.Context, url string) (string, error)

	// FetchTitle returns the page title of the document at url.
	FetchTitle(ctx context.Context, url string) (string, error)
}

// FileLoader reads local document files into plain text.
type FileLoader interface {
	// LoadFile extracts text from an arbitrary document.
	LoadFile(ctx context.Context, path string) (string, error)

	// LoadCSVRows extracts text from a CSV file row by row.
	LoadCSVRows(ctx context.Context, path string) (string, error)

	// ConvertRich converts a structured document (pdf, docx, csv tables)
	// using the rich converter engine.
	ConvertRich(ctx context.Context, path string) (string, error)
}

// TranscriptProvider retrieves video transcripts and titles.
type TranscriptProvider interface {
	// Transcript fetches the transcript for a video URL. Expected failure
	// modes (disabled transcripts, missing captions) are returned as errors.
	Transcript(ctx context.Context, url string) (string, error)

	// VideoTitle resolves the title for a video id.
	VideoTitle(ctx context.Context, videoID string) (string, error)
}

// ContentFilter reduces fetched page content to its relevant core.
type ContentFilter interface {
	Filter(ctx context.Context, content string) (string, error)
}

// Toolkit bundles the extraction engines an Extractor dispatches to.
// Individual fields may be nil; branches that need a missing engine
// report a NotConfiguredError instead of panicking.
type Toolkit struct {
	Captioner   Captioner
	PDF         PDFExtractor
	Transcriber Transcriber
	Web         WebFetcher
	Files       FileLoader
	YouTube     TranscriptProvider
	Filter      ContentFilter
}
