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


package engines

import (
	"net/http"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/extract"
)

// DefaultToolkit assembles the standard engine set: goquery web fetching,
// langchaingo document loaders, two-generation PDF extraction, multimodal
// captioning, and a language-model content filter. Speech-to-text and
// transcript retrieval stay unconfigured.
func DefaultToolkit(config *ai.Config, model ai.LanguageModel) (extract.Toolkit, error) {
	captioner, err := NewMultimodalCaptioner(config)
	if err != nil {
		return extract.Toolkit{}, err
	}

	var client *http.Client

	return extract.Toolkit{
		Captioner:   captioner,
		PDF:         NewPDFConverter(client),
		Transcriber: UnconfiguredTranscriber{},
		Web:         NewWebClient(client),
		Files:       NewFileLoader(),
		YouTube:     UnconfiguredTranscripts{},
		Filter:      NewModelFilter(model, config.MaxOutputTokens),
	}, nil
}
