package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newEmbeddingServer(t *testing.T, dims int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		resp := embeddingResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, struct {
				Object    string    `json:"object"`
				Index     int       `json:"index"`
				Embedding []float32 `json:"embedding"`
			}{Index: i, Embedding: make([]float32, dims)})
		}

		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
}

func TestGenerateEmbeddingsDimensionCheck(t *testing.T) {
	server := newEmbeddingServer(t, 3)
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test"})
	embedder.baseURL = server.URL

	if _, err := embedder.GenerateEmbeddings(context.Background(), []string{"hello"}); err == nil {
		t.Fatal("expected an error for a mismatched embedding dimension")
	}
}

func TestGenerateEmbeddingsFullWidth(t *testing.T) {
	server := newEmbeddingServer(t, EmbeddingDimensions)
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test"})
	embedder.baseURL = server.URL

	embeddings, err := embedder.GenerateEmbeddings(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(embeddings) != 2 {
		t.Fatalf("expected 2 embeddings, got %d", len(embeddings))
	}

	if len(embeddings[0]) != EmbeddingDimensions {
		t.Errorf("expected %d dimensions, got %d", EmbeddingDimensions, len(embeddings[0]))
	}
}
