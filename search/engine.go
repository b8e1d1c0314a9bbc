package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/poiesic/resolvit/ai"
	"github.com/poiesic/resolvit/core"
	"github.com/poiesic/resolvit/index"
	"github.com/poiesic/resolvit/textnorm"
)

// Engine resolves free-text queries to catalog entities by fusing an
// exhaustive semantic scan with lexical re-scoring over every indexed alias.
//
// The engine owns the current index through an atomic pointer: Search loads a
// snapshot and works against it without locking, while Rebuild publishes a
// freshly built index with a single swap. In-flight searches against the old
// snapshot complete undisturbed.
type Engine struct {
	embedder   ai.Embedder
	normalizer *textnorm.Normalizer
	buildOpts  []index.BuildOption
	clamp      bool
	logger     *slog.Logger

	idx atomic.Pointer[index.Index]
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithNormalizer sets the text normalizer used for aliases and queries.
// Default is textnorm.New(nil), which performs no script folding.
func WithNormalizer(normalizer *textnorm.Normalizer) Option {
	return func(e *Engine) error {
		if normalizer == nil {
			normalizer = textnorm.New(nil)
		}
		e.normalizer = normalizer
		return nil
	}
}

// WithBuildOptions sets index build options applied on every Rebuild, such
// as index.WithPoolSize or index.WithBatchSize.
func WithBuildOptions(opts ...index.BuildOption) Option {
	return func(e *Engine) error {
		e.buildOpts = opts
		return nil
	}
}

// WithClampedWeights zeroes any fusion weight pushed negative by length
// adjustment before renormalizing. Off by default; with the shipped weight
// constants adjustment can never produce a negative weight, so this only
// matters when the base weights are retuned.
func WithClampedWeights() Option {
	return func(e *Engine) error {
		e.clamp = true
		return nil
	}
}

// NewEngine creates a search engine. The engine starts with no index; call
// Rebuild before searching, or every search resolves to an empty result.
func NewEngine(embedder ai.Embedder, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	e := &Engine{
		embedder:   embedder,
		normalizer: textnorm.New(nil),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Rebuild builds a new index from the corpus and atomically publishes it.
// Concurrent searches keep using the previous index until the swap; there is
// no partially visible state. On build failure the previous index stays
// published.
func (e *Engine) Rebuild(ctx context.Context, corpus map[core.EntityID][]string) error {
	ix, err := index.Build(ctx, corpus, e.embedder, e.normalizer, e.buildOpts...)
	if err != nil {
		e.logger.Error("index rebuild failed", "err", err)
		return err
	}
	e.idx.Store(ix)
	return nil
}

// Size returns the number of indexed aliases, 0 before the first Rebuild.
func (e *Engine) Size() int {
	return e.idx.Load().Len()
}

// Search resolves query to at most topK entities, ranked by descending
// combined score with one result per entity.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]core.Candidate, error) {
	return e.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor is Search with observation hooks; the monitor receives
// callbacks at each stage. A nil monitor is replaced by a no-op.
//
// The query is normalized and embedded, every indexed alias is ranked by
// cosine similarity, lexically re-scored, and the four channels are fused
// with query-length-adaptive weights. Results are deduplicated per entity,
// keeping the best-scoring alias.
//
// An empty or absent index yields an empty result, not an error. Embedding
// failures surface as core.ErrEmbeddingUnavailable; the semantic channel is
// structurally required, so there is no degraded lexical-only mode.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, topK int, monitor Monitor) ([]core.Candidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if topK < 1 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidTopK, topK)
	}

	monitor.Start(query)

	ix := e.idx.Load()
	if ix.Len() == 0 {
		monitor.Finish(nil)
		return []core.Candidate{}, nil
	}

	normalized := e.normalizer.Normalize(query)
	monitor.AfterNormalize(normalized)

	vec, err := e.embedder.EmbedText(ctx, normalized)
	if err != nil {
		e.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrEmbeddingUnavailable, err)
	}

	hits := ix.Scan(index.NormalizeVector(vec))
	monitor.AfterSemanticScan(hits)

	// Weights do not vary per candidate; resolve once per query.
	weights := weightsFor(normalized, e.clamp)
	monitor.WeightsResolved(weights)

	// Fuse the semantic score with the lexical channels for every alias.
	// Lexical channels compare the raw query against the normalized alias;
	// only the embedding side sees the normalized query.
	type scored struct {
		pos      int
		combined float64
	}
	candidates := make([]scored, len(hits))
	for i, hit := range hits {
		entry := ix.At(hit.Pos)
		lex := scoreLexical(query, entry.Normalized)
		combined := weights.Semantic*hit.Score +
			weights.Substring*lex.Substring +
			weights.Levenshtein*lex.Levenshtein +
			weights.CharJaccard*lex.CharJaccard
		candidates[i] = scored{pos: hit.Pos, combined: combined}
	}

	// Stable sort preserves the semantic-scan order for equal combined
	// scores, so dedup tie-breaking is deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].combined > candidates[j].combined
	})

	// Dedup by entity during the descending pass, keeping the first (and
	// therefore best-scoring) alias of each entity.
	results := make([]core.Candidate, 0, topK)
	seen := make(map[core.EntityID]bool, topK)
	for _, c := range candidates {
		entry := ix.At(c.pos)
		if seen[entry.EntityID] {
			continue
		}
		seen[entry.EntityID] = true
		results = append(results, core.Candidate{
			EntityID: entry.EntityID,
			Alias:    entry.RawText,
			Score:    c.combined,
		})
		if len(results) == topK {
			break
		}
	}

	monitor.Finish(results)
	return results, nil
}
