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

import (
	"context"
	"log/slog"
)

// Extractor routes content descriptors to branch extractors and runs the
// branch's fallback logic against the configured toolkit.
type Extractor struct {
	tools  Toolkit
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger.With("component", "extractor")
	}
}

// NewExtractor creates an extractor over the given toolkit.
func NewExtractor(tools Toolkit, opts ...Option) *Extractor {
	e := &Extractor{
		tools:  tools,
		logger: slog.Default().With("component", "extractor"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract classifies the descriptor and runs the matching branch.
//
// Extract never returns a Go error directly: every failure mode is captured
// on the returned ContentState so one bad item cannot abort a batch. The
// returned state always has non-empty Content or a non-nil Err.
func (e *Extractor) Extract(ctx context.Context, desc ContentDescriptor) ContentState {
	kind := Classify(desc)
	e.logger.Debug("routing descriptor", "branch", kind.String())

	var state ContentState
	switch kind {
	case KindYouTube:
		state = e.extractYouTube(ctx, desc)
	case KindURL:
		state = e.extractURL(ctx, desc)
	case KindFile:
		state = e.extractFile(ctx, desc)
	case KindText:
		state = e.extractText(desc)
	default:
		state = e.extractError(desc)
	}

	state.SourceKind = kind
	if state.Err != nil {
		e.logger.Debug("extraction failed", "branch", kind.String(), "err", state.Err)
	}
	return state
}

// extractError terminates descriptors with no usable input.
func (e *Extractor) extractError(desc ContentDescriptor) ContentState {
	err := desc.Err
	if err == nil {
		err = ErrNoValidInput
	}
	return ContentState{Err: err}
}
