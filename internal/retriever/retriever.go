package retriever

import (
	"context"
	"fmt"
	"strings"

	"github.com/devfolio/server/internal/logger"
	"github.com/devfolio/server/internal/projects"
)

// retrieves up to limit projects relevant to the query and derives a
// confidence score from the top match.
//
// Embedding failures propagate to the caller; the orchestrator owns that
// failure path. Store failures are absorbed into a zero-confidence empty
// result instead - an infra error in the vector store should not crash a
// user-facing query.
func (c *Client) RetrieveProjects(ctx context.Context, query string, limit int) (*Result, error) {
	queryEmbedding, err := c.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	matches, err := c.store.SearchNearest(ctx, queryEmbedding, limit, nil)
	if err != nil {
		logger.ErrorErr(err, "vector search failed, returning empty result")
		return &Result{Projects: []projects.Project{}, Confidence: 0, Context: "", QueryEmbedding: queryEmbedding}, nil
	}

	if len(matches) == 0 {
		return &Result{Projects: []projects.Project{}, Confidence: 0, Context: "", QueryEmbedding: queryEmbedding}, nil
	}

	confidence := Confidence(queryEmbedding, matches[0].Embedding)

	return &Result{
		Projects:       matches,
		Confidence:     confidence,
		Context:        buildContext(matches),
		QueryEmbedding: queryEmbedding,
	}, nil
}

// joins the ranked matches into the grounding context passed to the LLM
func buildContext(matches []projects.Project) string {
	lines := make([]string, 0, len(matches))

	for _, p := range matches {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Title, p.Description))
	}

	return strings.Join(lines, "\n")
}
