package retriever

import "math"

// computes the cosine similarity between two equal-length vectors.
// Mismatched lengths and zero-magnitude vectors return 0 instead of
// erroring so callers can treat the value as a plain score.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// maps cosine similarity onto the [0,1] confidence scale the pipeline
// gates on. Negative similarity carries no useful signal for retrieval,
// so it clamps to 0 rather than rescaling the whole range.
func Confidence(queryEmbedding, matchEmbedding []float32) float64 {
	sim := CosineSimilarity(queryEmbedding, matchEmbedding)
	if sim < 0 {
		return 0
	}

	if sim > 1 {
		return 1
	}

	return sim
}
