package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})

		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
		assert.InDelta(t, 1.0, math.Sqrt(Dot(v, v)), 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}

func TestDot(t *testing.T) {
	t.Run("unit vectors give cosine", func(t *testing.T) {
		assert.InDelta(t, 0.0, Dot([]float32{1, 0}, []float32{0, 1}), 1e-9)
		assert.InDelta(t, 1.0, Dot([]float32{1, 0}, []float32{1, 0}), 1e-9)
		assert.InDelta(t, -1.0, Dot([]float32{0, 1}, []float32{0, -1}), 1e-9)
	})

	t.Run("unequal lengths use shorter prefix", func(t *testing.T) {
		assert.InDelta(t, 2.0, Dot([]float32{1, 1}, []float32{1, 1, 5}), 1e-9)
	})
}
