package search

import (
	"math"
	"strings"

	"github.com/hbollon/go-edlib"
)

// lexicalScores holds the three character-level similarity channels for one
// query/candidate pair. Each value is in [0, 1].
type lexicalScores struct {
	Substring   float64
	Levenshtein float64
	CharJaccard float64
}

// scoreLexical computes all lexical channels between a query and a candidate
// alias. The functions are total: every degenerate length case resolves to a
// defined value rather than an error, since they run in a tight per-candidate
// loop over the whole corpus.
func scoreLexical(query, candidate string) lexicalScores {
	return lexicalScores{
		Substring:   substringScore(query, candidate),
		Levenshtein: levenshteinScore(query, candidate),
		CharJaccard: charJaccardScore(query, candidate),
	}
}

// substringScore rewards verbatim containment and long contiguous runs of
// query characters that each occur somewhere in the candidate:
//
//	0.7*exact + 0.3*min(1, maxRun^1.5/len(query))
//
// where exact is 1 iff query occurs inside candidate, and maxRun is a greedy
// streak counter over the query's runes that resets whenever a rune is absent
// from the candidate. The continuity bonus is capped at 1 to keep the channel
// within [0, 1]. An empty query scores 0.
func substringScore(query, candidate string) float64 {
	q := []rune(query)
	if len(q) == 0 {
		return 0.0
	}

	exact := 0.0
	if strings.Contains(candidate, query) {
		exact = 1.0
	}

	candidateSet := runeSet(candidate)
	maxRun, run := 0, 0
	for _, r := range q {
		if candidateSet[r] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}

	bonus := math.Pow(float64(maxRun), 1.5) / float64(len(q))
	if bonus > 1.0 {
		bonus = 1.0
	}

	return 0.7*exact + 0.3*bonus
}

// levenshteinScore is the normalized edit-distance similarity
// 1 - dist/max(len(query), len(candidate)). Two empty strings score 0.0;
// with no characters to agree on there is no evidence of similarity, and the
// zero keeps the degenerate case from outranking real matches.
func levenshteinScore(query, candidate string) float64 {
	maxLen := max(len([]rune(query)), len([]rune(candidate)))
	if maxLen == 0 {
		return 0.0
	}

	dist := edlib.LevenshteinDistance(query, candidate)
	return 1.0 - float64(dist)/float64(maxLen)
}

// charJaccardScore is the Jaccard similarity of the two rune sets.
// An empty union scores 0.0.
func charJaccardScore(query, candidate string) float64 {
	qSet := runeSet(query)
	cSet := runeSet(candidate)

	intersection := 0
	for r := range qSet {
		if cSet[r] {
			intersection++
		}
	}
	union := len(qSet) + len(cSet) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
