package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstringScore(t *testing.T) {
	t.Run("verbatim containment maxes the channel", func(t *testing.T) {
		// Exact substring and a full contiguous run cap the score at 1.
		assert.InDelta(t, 1.0, substringScore("oracle", "oracle"), 1e-9)
		assert.InDelta(t, 1.0, substringScore("sky", "crimson sky"), 1e-9)
	})

	t.Run("no containment still earns continuity bonus", func(t *testing.T) {
		// Every query rune occurs in the candidate but not contiguously
		// as a substring.
		score := substringScore("cs", "crimson sky")
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 0.7)
	})

	t.Run("run resets on missing rune", func(t *testing.T) {
		// "x" is absent, so the streak restarts and the bonus shrinks.
		withBreak := substringScore("axb", "ab")
		contiguous := substringScore("ab", "ab")
		assert.Less(t, withBreak, contiguous)
	})

	t.Run("disjoint strings score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, substringScore("xyz", "oracle"))
	})

	t.Run("empty query defined as zero", func(t *testing.T) {
		assert.Equal(t, 0.0, substringScore("", "oracle"))
		assert.Equal(t, 0.0, substringScore("", ""))
	})

	t.Run("stays within bounds", func(t *testing.T) {
		for _, pair := range [][2]string{
			{"oracle", "oracle"},
			{"oracleoracle", "oracleoracleoracle"},
			{"红天", "红天"},
			{"a", "a"},
		} {
			score := substringScore(pair[0], pair[1])
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})
}

func TestLevenshteinScore(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.InDelta(t, 1.0, levenshteinScore("oracle", "oracle"), 1e-9)
	})

	t.Run("single edit", func(t *testing.T) {
		assert.InDelta(t, 1.0-1.0/6.0, levenshteinScore("oracle", "oracls"), 1e-9)
	})

	t.Run("normalizes by the longer string", func(t *testing.T) {
		assert.InDelta(t, 0.5, levenshteinScore("ab", "abcd"), 1e-9)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.InDelta(t, 0.5, levenshteinScore("红天", "红日"), 1e-9)
	})

	t.Run("one side empty", func(t *testing.T) {
		assert.Equal(t, 0.0, levenshteinScore("", "oracle"))
	})

	t.Run("both empty defined as zero", func(t *testing.T) {
		assert.Equal(t, 0.0, levenshteinScore("", ""))
	})
}

func TestCharJaccardScore(t *testing.T) {
	t.Run("identical sets", func(t *testing.T) {
		assert.InDelta(t, 1.0, charJaccardScore("abc", "cba"), 1e-9)
	})

	t.Run("partial overlap", func(t *testing.T) {
		// sets {a,b} and {b,c}: intersection 1, union 3
		assert.InDelta(t, 1.0/3.0, charJaccardScore("ab", "bc"), 1e-9)
	})

	t.Run("disjoint sets", func(t *testing.T) {
		assert.Equal(t, 0.0, charJaccardScore("ab", "cd"))
	})

	t.Run("empty union defined as zero", func(t *testing.T) {
		assert.Equal(t, 0.0, charJaccardScore("", ""))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, charJaccardScore("oracle", "dragon"), charJaccardScore("dragon", "oracle"))
	})
}

func TestScoreLexical(t *testing.T) {
	scores := scoreLexical("oracle", "oracle of ages")

	assert.Greater(t, scores.Substring, 0.0)
	assert.Greater(t, scores.Levenshtein, 0.0)
	assert.Greater(t, scores.CharJaccard, 0.0)
	for _, s := range []float64{scores.Substring, scores.Levenshtein, scores.CharJaccard} {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
