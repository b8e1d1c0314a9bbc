package index

import (
	"sort"

	"github.com/poiesic/resolvit/core"
)

// Hit pairs a corpus position with its semantic similarity to a query vector.
type Hit struct {
	Pos   int     // position of the entry within the index
	Score float64 // cosine similarity (dot product of unit vectors)
}

// Index holds the embedded alias corpus. An Index is immutable once built and
// safe for unlimited concurrent read-only use; a rebuild produces a brand-new
// Index that the caller publishes in place of the old one.
type Index struct {
	entries []core.AliasEntry
	vectors []float32 // all embeddings, row-major, len(entries)*dim
	dim     int
}

// Len returns the number of alias entries in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Dim returns the embedding dimension, or 0 for an empty index.
func (ix *Index) Dim() int {
	if ix == nil {
		return 0
	}
	return ix.dim
}

// At returns the entry at position i. The returned pointer aliases internal
// storage and must be treated as read-only.
func (ix *Index) At(i int) *core.AliasEntry {
	return &ix.entries[i]
}

// Scan computes the dot product of query against every stored vector and
// returns a hit for the entire corpus, sorted by descending score. The scan
// is deliberately exhaustive: corpora are small and every entry receives a
// lexical re-score downstream anyway, so approximate pruning would buy
// nothing.
func (ix *Index) Scan(query []float32) []Hit {
	if ix.Len() == 0 {
		return nil
	}

	hits := make([]Hit, len(ix.entries))
	for i := range ix.entries {
		row := ix.vectors[i*ix.dim : (i+1)*ix.dim]
		hits[i] = Hit{Pos: i, Score: Dot(query, row)}
	}

	// Stable keeps corpus order for equal scores, which makes dedup
	// tie-breaking deterministic across rebuilds.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}
