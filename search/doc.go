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


// Package search implements hybrid alias resolution.
//
// The Engine type fuses four signals per indexed alias:
//
//   - Semantic similarity from a multilingual embedding scan
//   - Substring containment with a contiguous-run bonus
//   - Normalized Levenshtein similarity
//   - Character-set Jaccard overlap
//
// Channel weights adapt to query length (short queries lean on character
// overlap, longer ones on embeddings) and always renormalize to sum to 1.
// Results are deduplicated per entity and ranked by the fused score, which
// makes noisy inputs such as abbreviations, nicknames, typos, and mixed
// simplified/traditional spellings resolve to the intended catalog entry.
package search
