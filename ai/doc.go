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


// Package ai provides abstractions for AI services used in Curator.
//
// This package defines interfaces for AI operations including text generation
// and embeddings. It follows the dependency inversion principle, allowing the
// core domain and pipeline logic to depend on abstractions rather than
// concrete implementations.
//
// The package is designed around three key interfaces:
//
//   - LanguageModel: Generates text completions (transformations, filtering, captioning)
//   - Embedder: Generates vector embeddings from text
//   - Provider: Aggregates AI services for convenient initialization
//
// Two implementation sub-packages are included:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewLanguageModel, etc.)
// return INTERFACE types to enforce abstraction and prevent accidental
// coupling to concrete implementations. Test utility constructors
// (mock.NewMockLanguageModel, mock.NewMockEmbedder) return CONCRETE types to
// enable test assertions and behavior injection.
package ai
