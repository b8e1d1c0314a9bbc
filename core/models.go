package core

// EntityID is the opaque identifier of a catalog entity. The engine never
// interprets it beyond equality comparison; callers typically use the key
// from their catalog document (e.g. a numeric song id rendered as a string).
type EntityID string

// AliasEntry is one (entity, alias string) pair in an indexed corpus.
// An entity owns one entry per alias string, including its canonical name.
// Entries are created during index construction and never mutated afterwards.
type AliasEntry struct {
	EntityID   EntityID
	RawText    string    // alias exactly as it appears in the catalog
	Normalized string    // canonical form of RawText, computed once at build
	Vector     []float32 // unit-length embedding of Normalized
}

// Candidate is a single ranked search hit: the best-scoring alias of one
// entity together with its combined score. Candidates are query-scoped and
// discarded after the response is returned.
type Candidate struct {
	EntityID EntityID
	Alias    string // representative alias text (raw form)
	Score    float64
}
