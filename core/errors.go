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

// Domain errors
var (
	// ErrInvalidTopK indicates a search was requested with top-k below 1.
	ErrInvalidTopK = errors.New("top k must be at least 1")

	// ErrEmbeddingUnavailable indicates the embedding service could not be
	// reached or returned an error. Retries, if desired, belong to the
	// embedding provider, not to the search path.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
