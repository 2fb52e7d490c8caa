package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// captionPrompt is the instruction given to the multimodal captioner.
const captionPrompt = "Describe the contents of this image in detail. Include any visible text."

// fileKinds maps file extensions to extraction strategies. Dispatch is by
// extension, not MIME sniffing.
var fileKinds = map[string]string{
	".jpg":  "image",
	".jpeg": "image",
	".png":  "image",
	".webp": "image",
	".pdf":  "pdf",
	".csv":  "csv",
	".doc":  "docx",
	".docx": "docx",
	".mp3":  "audio",
	".wav":  "audio",
	".aac":  "audio",
	".flac": "audio",
	".ogg":  "audio",
	".m4a":  "audio",
	".mp4":  "video",
	".mov":  "video",
	".avi":  "video",
	".mkv":  "video",
	".txt":  "txt",
}

// FileKind returns the extraction strategy for a file path.
func FileKind(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := fileKinds[ext]; ok {
		return kind
	}
	return "unknown"
}

// imageMIME derives the caption MIME type from the file extension.
func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// extractFile dispatches a local file to the strategy for its extension.
// Every failure is contained on the returned state; the branch never
// propagates an error past itself.
func (e *Extractor) extractFile(ctx context.Context, desc ContentDescriptor) ContentState {
	kind := FileKind(desc.FilePath)

	state := ContentState{IdentifiedType: kind}
	state.Title = desc.Title
	if state.Title == "" {
		state.Title = filepath.Base(desc.FilePath)
	}

	switch kind {
	case "image":
		state.Content, state.Err = e.captionImage(ctx, desc.FilePath)
	case "pdf":
		state.Content, state.Err = e.extractPDFFile(ctx, desc.FilePath)
	case "csv":
		state.Content, state.Err = e.extractCSV(ctx, desc.FilePath)
	case "docx":
		state.Content, state.Err = e.extractDocx(ctx, desc.FilePath)
	case "audio", "video":
		state.Content, state.Err = e.transcribeMedia(ctx, desc.FilePath)
	case "txt":
		state.Content, state.Err = e.loadGeneric(ctx, desc.FilePath)
	default:
		content, err := e.loadGeneric(ctx, desc.FilePath)
		if err == nil && strings.TrimSpace(content) == "" {
			err = fmt.Errorf("unsupported file type: %s", filepath.Ext(desc.FilePath))
		}
		state.Content, state.Err = content, err
	}

	return state
}

// captionImage runs the multimodal captioner. Tool-reported failures come
// back as text with an "Error:" prefix; those clear content and set Err.
func (e *Extractor) captionImage(ctx context.Context, path string) (string, error) {
	if e.tools.Captioner == nil {
		return "", &NotConfiguredError{Capability: "image captioning"}
	}

	caption, err := e.tools.Captioner.Caption(ctx, path, captionPrompt, imageMIME(path))
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(strings.TrimSpace(caption), "Error:") {
		return "", fmt.Errorf("caption tool: %s", strings.TrimSpace(caption))
	}
	return caption, nil
}

func (e *Extractor) extractPDFFile(ctx context.Context, path string) (string, error) {
	if e.tools.PDF == nil {
		return "", &NotConfiguredError{Capability: "pdf extraction"}
	}

	return runTiers(ctx, []tier{
		{name: "rich", run: func(ctx context.Context) (string, error) {
			return e.tools.PDF.ExtractRich(ctx, path)
		}},
		{name: "legacy", run: func(ctx context.Context) (string, error) {
			return e.tools.PDF.ExtractLegacy(ctx, path)
		}},
	})
}

func (e *Extractor) extractCSV(ctx context.Context, path string) (string, error) {
	if e.tools.Files == nil {
		return "", &NotConfiguredError{Capability: "file loading"}
	}

	return runTiers(ctx, []tier{
		{name: "rich", run: func(ctx context.Context) (string, error) {
			return e.tools.Files.ConvertRich(ctx, path)
		}},
		{name: "csv-rows", run: func(ctx context.Context) (string, error) {
			return e.tools.Files.LoadCSVRows(ctx, path)
		}},
		{name: "generic", run: func(ctx context.Context) (string, error) {
			return e.tools.Files.LoadFile(ctx, path)
		}},
	})
}

func (e *Extractor) extractDocx(ctx context.Context, path string) (string, error) {
	if e.tools.Files == nil {
		return "", &NotConfiguredError{Capability: "file loading"}
	}

	return runTiers(ctx, []tier{
		{name: "rich", run: func(ctx context.Context) (string, error) {
			return e.tools.Files.ConvertRich(ctx, path)
		}},
		{name: "generic", run: func(ctx context.Context) (string, error) {
			return e.tools.Files.LoadFile(ctx, path)
		}},
	})
}

func (e *Extractor) transcribeMedia(ctx context.Context, path string) (string, error) {
	if e.tools.Transcriber == nil {
		return "", &NotConfiguredError{Capability: "transcription"}
	}
	return e.tools.Transcriber.Transcribe(ctx, path)
}

func (e *Extractor) loadGeneric(ctx context.Context, path string) (string, error) {
	if e.tools.Files == nil {
		return "", &NotConfiguredError{Capability: "file loading"}
	}
	return e.tools.Files.LoadFile(ctx, path)
}
