package retriever

import (
	"context"

	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/projects"
)

// interface for nearest-neighbor project search, implemented by the
// projects repository; injected so tests can substitute fakes
type ProjectSearcher interface {
	SearchNearest(ctx context.Context, embedding []float32, limit int, excludeIDs []string) ([]projects.Project, error)
}

// retrieves portfolio projects by vector similarity and derives a
// confidence score from the top match
type Client struct {
	store    ProjectSearcher
	embedder llm.Embedder
}

// result of one retrieval pass; the query embedding is carried so the
// analytics path can log it without a second provider call
type Result struct {
	Projects       []projects.Project
	Confidence     float64
	Context        string
	QueryEmbedding []float32
}

func New(store ProjectSearcher, embedder llm.Embedder) *Client {
	return &Client{
		store:    store,
		embedder: embedder,
	}
}
