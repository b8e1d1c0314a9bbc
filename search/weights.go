package search

import "unicode/utf8"

// WeightSet holds the fusion weight of each scoring channel. After
// resolution the four weights always sum to 1.
type WeightSet struct {
	Semantic    float64
	Substring   float64
	Levenshtein float64
	CharJaccard float64
}

func (w WeightSet) sum() float64 {
	return w.Semantic + w.Substring + w.Levenshtein + w.CharJaccard
}

// baseWeights is the tuning point for channel fusion before length
// adjustment.
var baseWeights = WeightSet{
	Semantic:    0.5,
	Substring:   0.3,
	Levenshtein: 0.15,
	CharJaccard: 0.05,
}

// weightsFor resolves the channel weights for one query, adjusted by the
// rune count of the normalized query. Embeddings are unreliable for very
// short strings, so short queries shift weight from the semantic channel to
// substring matching. The adjusted weights are renormalized to sum to 1.
//
// clampNegative zeroes any weight pushed below zero before renormalizing;
// with the shipped constants no weight can go negative, so the flag only
// matters if the base weights are retuned.
func weightsFor(normalizedQuery string, clampNegative bool) WeightSet {
	w := baseWeights

	switch length := utf8.RuneCountInString(normalizedQuery); {
	case length <= 4:
		w.Substring += 0.2
		w.Semantic -= 0.15
	case length <= 8:
		w.Substring += 0.1
		w.Semantic -= 0.05
	}

	if clampNegative {
		w.Semantic = max(w.Semantic, 0)
		w.Substring = max(w.Substring, 0)
		w.Levenshtein = max(w.Levenshtein, 0)
		w.CharJaccard = max(w.CharJaccard, 0)
	}

	total := w.sum()
	if total == 0 {
		// Degenerate retuning; fall back to an even split.
		return WeightSet{Semantic: 0.25, Substring: 0.25, Levenshtein: 0.25, CharJaccard: 0.25}
	}
	w.Semantic /= total
	w.Substring /= total
	w.Levenshtein /= total
	w.CharJaccard /= total
	return w
}
