// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import "strings"

// ContentKind identifies the extraction branch selected for a descriptor.
type ContentKind int

const (
	// KindError marks descriptors with no usable input or a pre-existing error.
	KindError ContentKind = iota
	// KindYouTube marks URLs pointing at a YouTube video.
	KindYouTube
	// KindURL marks any other web address.
	KindURL
	// KindFile marks local file paths.
	KindFile
	// KindText marks raw pasted text.
	KindText
)

// String returns the branch name for logging.
func (k ContentKind) String() string {
	switch k {
	case KindYouTube:
		return "youtube"
	case KindURL:
		return "url"
	case KindFile:
		return "file"
	case KindText:
		return "text"
	default:
		return "error"
	}
}

// Method selects between extraction engine generations for documents.
const (
	MethodRich   = "rich"
	MethodLegacy = "legacy"
)

// ContentDescriptor describes one item to ingest. Exactly one of URL,
// FilePath, or Text is populated.
type ContentDescriptor struct {
	URL      string
	FilePath string
	Text     string

	// Title overrides derived titles when non-empty.
	Title string

	// ApplyContentFilter enables the language-model content filter for
	// webpage extraction. It has no effect on other branches.
	ApplyContentFilter bool

	// Method selects the document extraction engine ("rich" or "legacy").
	Method string

	// Err carries a pipeline-level error raised before extraction. A
	// descriptor with Err set routes straight to the error branch.
	Err error
}

// ContentState is the outcome of extracting one descriptor.
//
// Invariant: once extraction concludes, Content or Err is non-empty.
type ContentState struct {
	Content        string
	Title          string
	SourceKind     ContentKind
	IdentifiedType string
	Provider       string
	Metadata       map[string]string
	Err            error
}

// youtubeHosts are the URL substrings that route to the YouTube branch.
var youtubeHosts = []string{"youtube.com", "youtu.be"}

// Classify selects the extraction branch for a descriptor.
//
// Decision order is a deliberate priority, first match wins: a pre-existing
// error, then a YouTube URL, then any URL, then a file path, then raw text.
// URL-bearing descriptors never fall through to file or text handling.
func Classify(desc ContentDescriptor) ContentKind {
	if desc.Err != nil {
		return KindError
	}
	if desc.URL != "" {
		for _, host := range youtubeHosts {
			if strings.Contains(desc.URL, host) {
				return KindYouTube
			}
		}
		return KindURL
	}
	if desc.FilePath != "" {
		return KindFile
	}
	if desc.Text != "" {
		return KindText
	}
	return KindError
}
