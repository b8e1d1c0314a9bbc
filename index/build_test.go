package index

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resolvit/ai/mock"
	"github.com/poiesic/resolvit/core"
	"github.com/poiesic/resolvit/textnorm"
)

func TestBuild(t *testing.T) {
	ctx := context.Background()
	embedder := mock.NewMockEmbedder()
	normalizer := textnorm.New(nil)

	t.Run("nil embedder", func(t *testing.T) {
		_, err := Build(ctx, nil, nil, normalizer)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("empty corpus builds empty index", func(t *testing.T) {
		ix, err := Build(ctx, map[core.EntityID][]string{}, embedder, normalizer)
		require.NoError(t, err)
		assert.Equal(t, 0, ix.Len())
		assert.Nil(t, ix.Scan([]float32{1, 0}))
	})

	t.Run("entity with zero aliases is valid", func(t *testing.T) {
		ix, err := Build(ctx, map[core.EntityID][]string{"1": {}}, embedder, normalizer)
		require.NoError(t, err)
		assert.Equal(t, 0, ix.Len())
	})

	t.Run("flattens one entry per alias", func(t *testing.T) {
		corpus := map[core.EntityID][]string{
			"1": {"Oracle", "神託"},
			"2": {"Dragon"},
		}
		ix, err := Build(ctx, corpus, embedder, normalizer)
		require.NoError(t, err)
		require.Equal(t, 3, ix.Len())

		// Entity ids are visited in sorted order, aliases in list order.
		assert.Equal(t, core.EntityID("1"), ix.At(0).EntityID)
		assert.Equal(t, "Oracle", ix.At(0).RawText)
		assert.Equal(t, "oracle", ix.At(0).Normalized)
		assert.Equal(t, "神託", ix.At(1).RawText)
		assert.Equal(t, core.EntityID("2"), ix.At(2).EntityID)
	})

	t.Run("vectors are unit length and index aligned", func(t *testing.T) {
		ix, err := Build(ctx, map[core.EntityID][]string{"1": {"Oracle", "Dragon"}}, embedder, normalizer)
		require.NoError(t, err)
		require.Equal(t, 2, ix.Len())
		assert.Equal(t, 384, ix.Dim())

		for i := 0; i < ix.Len(); i++ {
			vec := ix.At(i).Vector
			require.Len(t, vec, ix.Dim())
			assert.InDelta(t, 1.0, math.Sqrt(Dot(vec, vec)), 1e-5)
		}
	})

	t.Run("small batches preserve order", func(t *testing.T) {
		corpus := map[core.EntityID][]string{
			"1": {"alpha", "beta", "gamma"},
			"2": {"delta", "epsilon"},
		}
		big, err := Build(ctx, corpus, embedder, normalizer)
		require.NoError(t, err)
		small, err := Build(ctx, corpus, embedder, normalizer, WithBatchSize(1), WithPoolSize(4))
		require.NoError(t, err)

		require.Equal(t, big.Len(), small.Len())
		for i := 0; i < big.Len(); i++ {
			assert.Equal(t, big.At(i).RawText, small.At(i).RawText)
			assert.Equal(t, big.At(i).Vector, small.At(i).Vector)
		}
	})

	t.Run("identical corpora build identical indexes", func(t *testing.T) {
		corpus := map[core.EntityID][]string{
			"101": {"Crimson Sky", "红天"},
			"102": {"Blue Sky"},
		}
		first, err := Build(ctx, corpus, embedder, normalizer)
		require.NoError(t, err)
		second, err := Build(ctx, corpus, embedder, normalizer)
		require.NoError(t, err)

		require.Equal(t, first.Len(), second.Len())
		for i := 0; i < first.Len(); i++ {
			assert.Equal(t, first.At(i).EntityID, second.At(i).EntityID)
			assert.Equal(t, first.At(i).RawText, second.At(i).RawText)
			assert.Equal(t, first.At(i).Vector, second.At(i).Vector)
		}
	})

	t.Run("embedding failure wraps ServiceUnavailable", func(t *testing.T) {
		broken := mock.NewMockEmbedder()
		broken.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("connection refused")
		}

		_, err := Build(ctx, map[core.EntityID][]string{"1": {"Oracle"}}, broken, normalizer)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrEmbeddingUnavailable)
	})

	t.Run("short embedder response is an error", func(t *testing.T) {
		broken := mock.NewMockEmbedder()
		broken.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{}, nil
		}

		_, err := Build(ctx, map[core.EntityID][]string{"1": {"Oracle"}}, broken, normalizer)
		assert.Error(t, err)
	})
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	normalizer := textnorm.New(nil)

	// Axis-aligned stub embeddings make expected rankings explicit.
	axes := map[string][]float32{
		"oracle": {1, 0, 0},
		"dragon": {0, 1, 0},
		"lily":   {0, 0, 1},
	}
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = axes[text]
		}
		return out, nil
	}

	corpus := map[core.EntityID][]string{
		"1": {"Oracle"},
		"2": {"Dragon"},
		"3": {"Lily"},
	}
	ix, err := Build(ctx, corpus, embedder, normalizer)
	require.NoError(t, err)

	t.Run("ranks entire corpus by descending score", func(t *testing.T) {
		hits := ix.Scan([]float32{0.9, 0.1, 0})

		require.Len(t, hits, 3)
		assert.Equal(t, "Oracle", ix.At(hits[0].Pos).RawText)
		assert.Equal(t, "Dragon", ix.At(hits[1].Pos).RawText)
		for i := 1; i < len(hits); i++ {
			assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
		}
	})

	t.Run("equal scores keep corpus order", func(t *testing.T) {
		hits := ix.Scan([]float32{0, 0, 0})

		require.Len(t, hits, 3)
		assert.Equal(t, 0, hits[0].Pos)
		assert.Equal(t, 1, hits[1].Pos)
		assert.Equal(t, 2, hits[2].Pos)
	})

	t.Run("nil index scans empty", func(t *testing.T) {
		var empty *Index
		assert.Equal(t, 0, empty.Len())
		assert.Nil(t, empty.Scan([]float32{1}))
	})
}
