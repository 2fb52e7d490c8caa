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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSource indicates a SourceRecord failed validation.
	ErrInvalidSource = errors.New("invalid source record")

	// ErrInvalidCollection indicates a Collection failed validation.
	ErrInvalidCollection = errors.New("invalid collection")

	// ErrInvalidTransformation indicates a TransformationSpec failed validation.
	ErrInvalidTransformation = errors.New("invalid transformation spec")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent indicates the FullText field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyCollectionName indicates the collection Name field is empty.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")

	// ErrEmptyPrompt indicates the transformation Prompt field is empty.
	ErrEmptyPrompt = errors.New("transformation prompt cannot be empty")

	// ErrEmptyTransformationName indicates the transformation Name field is empty.
	ErrEmptyTransformationName = errors.New("transformation name cannot be empty")
)
