package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/devfolio/server/internal/projects"
)

// implements llm.Embedder for testing
type mockEmbedder struct {
	embedding []float32
	err       error
	calls     int
}

func (m *mockEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	if m.embedding != nil {
		return m.embedding, nil
	}

	return []float32{1, 0, 0}, nil
}

func (m *mockEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}

	return out, nil
}

// implements ProjectSearcher for testing
type mockSearcher struct {
	results      []projects.Project
	err          error
	lastExcluded []string
	lastLimit    int
}

func (m *mockSearcher) SearchNearest(_ context.Context, _ []float32, limit int, excludeIDs []string) ([]projects.Project, error) {
	m.lastLimit = limit
	m.lastExcluded = excludeIDs

	if m.err != nil {
		return nil, m.err
	}

	return m.results, nil
}

func strPtr(s string) *string {
	return &s
}

func TestRetrieveProjectsEmptyStore(t *testing.T) {
	client := New(&mockSearcher{}, &mockEmbedder{})

	result, err := client.RetrieveProjects(context.Background(), "tell me about react", 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Projects) != 0 {
		t.Errorf("expected empty projects, got %d", len(result.Projects))
	}

	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", result.Confidence)
	}

	if result.Context != "" {
		t.Errorf("expected empty context, got %q", result.Context)
	}
}

func TestRetrieveProjectsStoreErrorAbsorbed(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("connection refused")}
	client := New(searcher, &mockEmbedder{})

	result, err := client.RetrieveProjects(context.Background(), "query", 3)
	if err != nil {
		t.Fatalf("store errors must not propagate, got: %v", err)
	}

	if result.Confidence != 0 || len(result.Projects) != 0 {
		t.Errorf("expected zero result on store error, got confidence %f with %d projects",
			result.Confidence, len(result.Projects))
	}
}

func TestRetrieveProjectsEmbeddingErrorPropagates(t *testing.T) {
	embedder := &mockEmbedder{err: errors.New("provider unavailable")}
	client := New(&mockSearcher{}, embedder)

	if _, err := client.RetrieveProjects(context.Background(), "query", 3); err == nil {
		t.Fatal("expected embedding error to propagate")
	}
}

func TestRetrieveProjectsConfidenceFromTopMatch(t *testing.T) {
	searcher := &mockSearcher{
		results: []projects.Project{
			{ID: "1", Title: "Chat App", Description: "Realtime chat", Embedding: []float32{1, 0, 0}},
			{ID: "2", Title: "Blog", Description: "Markdown blog", Embedding: []float32{0, 1, 0}},
		},
	}

	client := New(searcher, &mockEmbedder{embedding: []float32{1, 0, 0}})

	result, err := client.RetrieveProjects(context.Background(), "chat", 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Confidence < 0.999 {
		t.Errorf("expected confidence ~1 from identical top embedding, got %f", result.Confidence)
	}

	expected := "Chat App: Realtime chat\nBlog: Markdown blog"
	if result.Context != expected {
		t.Errorf("unexpected context:\n got: %q\nwant: %q", result.Context, expected)
	}
}

func TestRetrieveProjectsPassesLimit(t *testing.T) {
	searcher := &mockSearcher{}
	client := New(searcher, &mockEmbedder{})

	if _, err := client.RetrieveProjects(context.Background(), "query", 5); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if searcher.lastLimit != 5 {
		t.Errorf("expected limit 5 passed to store, got %d", searcher.lastLimit)
	}
}

func TestSuggestionsEmptyExcludeShortCircuits(t *testing.T) {
	embedder := &mockEmbedder{}
	client := New(&mockSearcher{}, embedder)

	suggestions := client.Suggestions(context.Background(), nil, "query", 2)

	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", suggestions)
	}

	if embedder.calls != 0 {
		t.Errorf("expected no embedding call for empty exclude set, got %d", embedder.calls)
	}
}

func TestSuggestionsFormatting(t *testing.T) {
	searcher := &mockSearcher{
		results: []projects.Project{
			{ID: "2", Title: "Weather App", DemoURL: strPtr("https://demo.example/weather")},
			{ID: "3", Title: "CLI Tool"},
		},
	}

	client := New(searcher, &mockEmbedder{})

	suggestions := client.Suggestions(context.Background(), []string{"1"}, "query", 2)

	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}

	if suggestions[0] != "You might also like [Weather App](https://demo.example/weather)" {
		t.Errorf("unexpected linked suggestion: %q", suggestions[0])
	}

	if suggestions[1] != "You might also like CLI Tool" {
		t.Errorf("unexpected plain suggestion: %q", suggestions[1])
	}
}

func TestSuggestionsErrorsReturnEmpty(t *testing.T) {
	client := New(&mockSearcher{err: errors.New("boom")}, &mockEmbedder{})

	if s := client.Suggestions(context.Background(), []string{"1"}, "query", 2); len(s) != 0 {
		t.Errorf("expected empty suggestions on store error, got %v", s)
	}

	client = New(&mockSearcher{}, &mockEmbedder{err: errors.New("boom")})

	if s := client.Suggestions(context.Background(), []string{"1"}, "query", 2); len(s) != 0 {
		t.Errorf("expected empty suggestions on embedding error, got %v", s)
	}
}

func TestSuggestionsPassesExcludeIDs(t *testing.T) {
	searcher := &mockSearcher{}
	client := New(searcher, &mockEmbedder{})

	client.Suggestions(context.Background(), []string{"a", "b"}, "query", 2)

	if len(searcher.lastExcluded) != 2 {
		t.Errorf("expected 2 excluded IDs passed to store, got %v", searcher.lastExcluded)
	}
}
