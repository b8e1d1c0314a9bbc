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


// Package ai provides the embedding abstraction used by resolvit.
//
// The core engine depends only on the Embedder interface; concrete
// implementations live in sub-packages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double with no external dependencies
//
// Public constructors (openai.NewEmbedder) return the INTERFACE type to
// enforce abstraction and support dependency injection. Test utility
// constructors (mock.NewMockEmbedder) return CONCRETE types to enable
// behavior injection and call-count assertions.
//
// Embedders are expected to return vectors of a fixed dimension per model
// and must be safe for concurrent use; the engine issues batch calls during
// index builds from multiple goroutines.
package ai
