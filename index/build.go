package index

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/resolvit/ai"
	"github.com/poiesic/resolvit/core"
	"github.com/poiesic/resolvit/textnorm"
)

const defaultBatchSize = 64

// BuildOption configures an index build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	poolSize  int
	batchSize int
	logger    *slog.Logger
}

// WithPoolSize sets the number of concurrent embedding batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuildOption {
	return func(c *buildConfig) {
		if size < 1 {
			size = 1
		}
		c.poolSize = size
	}
}

// WithBatchSize sets how many texts are embedded per batch call.
// Default is 64.
func WithBatchSize(size int) BuildOption {
	return func(c *buildConfig) {
		if size < 1 {
			size = 1
		}
		c.batchSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// Build flattens the corpus map into ordered alias entries, normalizes and
// embeds every alias once, and returns an immutable Index. Entity ids are
// visited in sorted order so identical corpora always produce identical
// indexes. Embedding batches run concurrently on a worker pool; vectors are
// unit-normalized so that dot product equals cosine similarity.
//
// An empty corpus builds an empty index; that is a valid state, not an error.
// Embedding failures are wrapped in core.ErrEmbeddingUnavailable.
func Build(
	ctx context.Context,
	corpus map[core.EntityID][]string,
	embedder ai.Embedder,
	normalizer *textnorm.Normalizer,
	opts ...BuildOption,
) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if normalizer == nil {
		normalizer = textnorm.New(nil)
	}

	cfg := &buildConfig{
		poolSize:  max(runtime.NumCPU()/2, 1),
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Flatten the corpus. An entity contributes one entry per alias string.
	entries := make([]core.AliasEntry, 0, len(corpus))
	for _, id := range slices.Sorted(maps.Keys(corpus)) {
		for _, alias := range corpus[id] {
			entries = append(entries, core.AliasEntry{
				EntityID:   id,
				RawText:    alias,
				Normalized: normalizer.Normalize(alias),
			})
		}
	}

	if len(entries) == 0 {
		cfg.logger.Info("building empty index, corpus has no aliases")
		return &Index{}, nil
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Normalized
	}

	batches, err := embedBatches(ctx, texts, embedder, cfg)
	if err != nil {
		return nil, err
	}

	ix, err := assemble(entries, batches)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("index built",
		"entities", len(corpus), "aliases", ix.Len(), "dim", ix.Dim())
	return ix, nil
}

// embedBatches embeds texts in batchSize slices across a worker pool,
// preserving input order. The first error wins; remaining batches still run
// to completion but their output is discarded.
func embedBatches(ctx context.Context, texts []string, embedder ai.Embedder, cfg *buildConfig) ([][][]float32, error) {
	numBatches := (len(texts) + cfg.batchSize - 1) / cfg.batchSize
	batches := make([][][]float32, numBatches)

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for b := 0; b < numBatches; b++ {
		start := b * cfg.batchSize
		end := min(start+cfg.batchSize, len(texts))

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			vecs, err := embedder.EmbedTexts(ctx, texts[start:end])
			if err != nil {
				recordErr(err)
				return
			}
			if len(vecs) != end-start {
				recordErr(fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), end-start))
				return
			}
			batches[b] = vecs
		})
		if submitErr != nil {
			wg.Done()
			recordErr(submitErr)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEmbeddingUnavailable, firstErr)
	}
	return batches, nil
}

// assemble lays the batch results out contiguously, index-aligned with the
// entries, unit-normalizing every vector.
func assemble(entries []core.AliasEntry, batches [][][]float32) (*Index, error) {
	dim := 0
	for _, batch := range batches {
		if len(batch) > 0 {
			dim = len(batch[0])
			break
		}
	}
	if dim == 0 {
		return nil, fmt.Errorf("embedder returned zero-dimension vectors")
	}

	vectors := make([]float32, len(entries)*dim)
	pos := 0
	for _, batch := range batches {
		for _, vec := range batch {
			if len(vec) != dim {
				return nil, fmt.Errorf("inconsistent embedding dimension: got %d, want %d", len(vec), dim)
			}
			copy(vectors[pos*dim:(pos+1)*dim], NormalizeVector(vec))
			pos++
		}
	}
	for i := range entries {
		entries[i].Vector = vectors[i*dim : (i+1)*dim : (i+1)*dim]
	}

	return &Index{entries: entries, vectors: vectors, dim: dim}, nil
}
