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


// Package index builds and queries the embedded alias corpus.
//
// Build is a one-shot batch operation: it flattens an entity-to-aliases map
// into ordered entries, embeds every normalized alias (batched across a
// worker pool), and returns an immutable Index. Scans are exhaustive by
// design; corpora in this domain sit in the low thousands of aliases, and
// every entry gets a lexical re-score downstream regardless, so approximate
// nearest-neighbor pruning would only save the cheapest pass.
//
// An Index never mutates after Build returns, so it may be shared across any
// number of concurrent readers without locking. Refreshing the corpus means
// building a new Index and swapping the reference; readers holding the old
// one keep a consistent, if stale, view.
package index
