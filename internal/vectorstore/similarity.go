package vectorstore

import "math"

// Cosine computes the cosine similarity between two vectors: the dot
// product divided by the product of magnitudes. A zero-magnitude vector
// or a length mismatch yields 0, never a division by zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}
