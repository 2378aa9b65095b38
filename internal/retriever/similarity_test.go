package retriever

import (
	"math"
	"testing"
)

func TestCosineSimilarityIdenticalVectors(t *testing.T) {
	v := []float32{0.5, -1.2, 3.3, 0.1}

	sim := CosineSimilarity(v, v)

	if math.Abs(sim-1.0) > 1e-6 {
		t.Errorf("expected similarity ~1.0 for identical vectors, got %f", sim)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	v := []float32{1, 2, 3}
	zero := []float32{0, 0, 0}

	if sim := CosineSimilarity(v, zero); sim != 0 {
		t.Errorf("expected 0 for zero-magnitude vector, got %f", sim)
	}

	if sim := CosineSimilarity(zero, zero); sim != 0 {
		t.Errorf("expected 0 for two zero vectors, got %f", sim)
	}
}

func TestCosineSimilarityMismatchedLengths(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2}

	if sim := CosineSimilarity(a, b); sim != 0 {
		t.Errorf("expected 0 for mismatched lengths, got %f", sim)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	if sim := CosineSimilarity(a, b); math.Abs(sim) > 1e-6 {
		t.Errorf("expected ~0 for orthogonal vectors, got %f", sim)
	}
}

func TestCosineSimilarityOpposite(t *testing.T) {
	a := []float32{1, 1}
	b := []float32{-1, -1}

	if sim := CosineSimilarity(a, b); math.Abs(sim+1.0) > 1e-6 {
		t.Errorf("expected ~-1 for opposite vectors, got %f", sim)
	}
}

func TestConfidenceClampsNegativeSimilarity(t *testing.T) {
	a := []float32{1, 1}
	b := []float32{-1, -1}

	if conf := Confidence(a, b); conf != 0 {
		t.Errorf("expected negative similarity clamped to 0, got %f", conf)
	}
}

func TestConfidenceIdenticalVectors(t *testing.T) {
	v := []float32{0.2, 0.4, 0.6}

	conf := Confidence(v, v)

	if conf < 0.999 || conf > 1.0 {
		t.Errorf("expected confidence ~1 for identical vectors, got %f", conf)
	}
}
