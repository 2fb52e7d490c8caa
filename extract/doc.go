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


// Package extract classifies content descriptors and turns them into
// normalized extraction outcomes.
//
// A ContentDescriptor names one item to ingest (a URL, a file path, or raw
// text). Classify routes it to one of the branch extractors (YouTube,
// general URL, file, text), each of which encapsulates its own fallback-tier
// logic over the engines in a Toolkit. The result is a ContentState that
// always carries either content or an error, never neither.
//
// Concrete engines live in the engines subpackage; the Toolkit interfaces
// keep this package free of network and parser dependencies.
package extract
