package index

import "math"

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sumSquares float64
	for _, val := range v {
		sumSquares += float64(val) * float64(val)
	}

	result := make([]float32, len(v))

	// Can't normalize zero vector
	if sumSquares == 0 {
		return result
	}

	magnitude := float32(math.Sqrt(sumSquares))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// Dot returns the dot product of two vectors. For unit vectors this equals
// cosine similarity. Vectors of unequal length are compared over the shorter
// prefix.
func Dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
