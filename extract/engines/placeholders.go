package engines

import (
	"context"

	"github.com/poiesic/curator/extract"
)

// UnconfiguredTranscriber is the slot for a speech-to-text engine. No local
// engine ships with curator; extraction degrades per-item.
type UnconfiguredTranscriber struct{}

func (UnconfiguredTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	return "", &extract.NotConfiguredError{Capability: "transcription"}
}

// UnconfiguredTranscripts is the slot for a video transcript provider.
// Title lookups also fail here, which pushes the title chain to the generic
// page-title fetch.
type UnconfiguredTranscripts struct{}

func (UnconfiguredTranscripts) Transcript(ctx context.Context, url string) (string, error) {
	return "", &extract.NotConfiguredError{Capability: "youtube transcript"}
}

func (UnconfiguredTranscripts) VideoTitle(ctx context.Context, videoID string) (string, error) {
	return "", &extract.NotConfiguredError{Capability: "youtube title lookup"}
}
