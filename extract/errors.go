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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoValidInput indicates a descriptor with no URL, file path, or text.
	ErrNoValidInput = errors.New("no valid input: provide a URL, file path, or text")

	// ErrNoContent indicates an empty text descriptor.
	ErrNoContent = errors.New("no content provided")

	// ErrNoVideoID indicates a YouTube URL that matched no id pattern.
	ErrNoVideoID = errors.New("could not extract video id from URL")

	// ErrEmptyPage indicates a webpage fetch that succeeded but returned
	// nothing usable.
	ErrEmptyPage = errors.New("page fetch returned no content")
)

// NotConfiguredError reports a toolkit capability that has no engine wired.
// Callers treat it as a per-item extraction failure and continue the batch.
type NotConfiguredError struct {
	Capability string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s engine not configured", e.Capability)
}

// FallbackExhaustedError reports that every tier of a multi-tier extractor
// failed or produced empty output. It names the tiers tried in order.
type FallbackExhaustedError struct {
	Tiers []string
	Errs  []error
}

func (e *FallbackExhaustedError) Error() string {
	parts := make([]string, len(e.Tiers))
	for i, name := range e.Tiers {
		if i < len(e.Errs) && e.Errs[i] != nil {
			parts[i] = fmt.Sprintf("%s: %v", name, e.Errs[i])
		} else {
			parts[i] = fmt.Sprintf("%s: empty output", name)
		}
	}
	return "all extraction tiers failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-tier errors for errors.Is/As inspection.
func (e *FallbackExhaustedError) Unwrap() []error {
	return e.Errs
}
