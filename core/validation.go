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


package core

import "fmt"

// ValidateSource validates a SourceRecord according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - FullText must not be empty
//
// NOT validated (populated later):
//   - Insights (appended by the transformation stage)
//   - Vector (can be empty until embedding runs)
//   - ID (0 is valid from database sequences)
func ValidateSource(source *SourceRecord) error {
	if source == nil {
		return fmt.Errorf("%w: source is nil", ErrInvalidSource)
	}

	if source.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSource, ErrEmptyTitle)
	}

	if source.FullText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSource, ErrEmptyContent)
	}

	return nil
}

// ValidateCollection validates a Collection according to domain rules.
func ValidateCollection(collection *Collection) error {
	if collection == nil {
		return fmt.Errorf("%w: collection is nil", ErrInvalidCollection)
	}

	if collection.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCollection, ErrEmptyCollectionName)
	}

	return nil
}

// ValidateTransformationSpec validates a TransformationSpec according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Prompt must not be empty
//
// Title may be empty: the executor still returns the output to the caller,
// it just does not attach an insight.
func ValidateTransformationSpec(spec *TransformationSpec) error {
	if spec == nil {
		return fmt.Errorf("%w: spec is nil", ErrInvalidTransformation)
	}

	if spec.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTransformation, ErrEmptyTransformationName)
	}

	if spec.Prompt == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTransformation, ErrEmptyPrompt)
	}

	return nil
}
