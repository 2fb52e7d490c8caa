package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// videoIDPatterns are tried in order; the first match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^&?]+)`),
	regexp.MustCompile(`/live/([^&?/]+)`),
}

// placeholderTitles are page titles that indicate a failed lookup rather
// than the real video title. Comparison is case-insensitive.
var placeholderTitles = []string{"watch", "/watch"}

// VideoID extracts the YouTube video id from a URL.
func VideoID(url string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// extractYouTube fetches a video transcript and resolves its title.
//
// Transcript retrieval failures are expected (disabled transcripts, missing
// captions): the error text becomes the state's content as well as its Err,
// so the failure is visible without aborting the batch.
func (e *Extractor) extractYouTube(ctx context.Context, desc ContentDescriptor) ContentState {
	state := ContentState{
		IdentifiedType: "youtube",
		Provider:       "youtube",
	}

	id, ok := VideoID(desc.URL)
	if !ok {
		state.Err = fmt.Errorf("%w: %s", ErrNoVideoID, desc.URL)
		return state
	}
	state.Metadata = map[string]string{"video_id": id}

	state.Title = e.resolveVideoTitle(ctx, desc, id)

	if e.tools.YouTube == nil {
		state.Err = &NotConfiguredError{Capability: "youtube transcript"}
		return state
	}

	transcript, err := e.tools.YouTube.Transcript(ctx, desc.URL)
	if err != nil {
		state.Content = err.Error()
		state.Err = err
		return state
	}

	state.Content = transcript
	if strings.TrimSpace(transcript) == "" {
		state.Err = fmt.Errorf("empty transcript for video %s", id)
	}
	return state
}

// resolveVideoTitle runs the title fallback chain: provider lookup, then a
// generic page-title fetch, then a synthesized name. Lookup results that are
// empty, echo the URL, or match known placeholder failures are rejected.
func (e *Extractor) resolveVideoTitle(ctx context.Context, desc ContentDescriptor, id string) string {
	if desc.Title != "" {
		return desc.Title
	}

	if e.tools.YouTube != nil {
		if title, err := e.tools.YouTube.VideoTitle(ctx, id); err == nil && usableVideoTitle(title, desc.URL) {
			return title
		}
	}

	if e.tools.Web != nil {
		if title, err := e.tools.Web.FetchTitle(ctx, desc.URL); err == nil && usableVideoTitle(title, desc.URL) {
			return title
		}
	}

	return fmt.Sprintf("YouTube Video (%s)", id)
}

// usableVideoTitle reports whether a looked-up title is the real video title.
func usableVideoTitle(title, url string) bool {
	if title == "" || title == url {
		return false
	}
	lower := strings.ToLower(title)
	for _, placeholder := range placeholderTitles {
		if lower == placeholder {
			return false
		}
	}
	return !strings.Contains(lower, "processing error")
}
