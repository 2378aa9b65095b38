package retriever

import (
	"context"
	"fmt"

	"github.com/devfolio/server/internal/logger"
)

// returns "You might also like" strings for up to max projects near the
// query, excluding the already-shown IDs.
//
// Suggestions are cosmetic: every failure path returns an empty slice so
// the primary response is never blocked. An empty exclude set returns
// immediately without spending an embedding call - there is nothing shown
// yet to suggest alternatives to.
func (c *Client) Suggestions(ctx context.Context, excludeIDs []string, query string, max int) []string {
	if len(excludeIDs) == 0 {
		return []string{}
	}

	queryEmbedding, err := c.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		logger.ErrorErr(err, "suggestion embedding failed")
		return []string{}
	}

	matches, err := c.store.SearchNearest(ctx, queryEmbedding, max, excludeIDs)
	if err != nil {
		logger.ErrorErr(err, "suggestion search failed")
		return []string{}
	}

	suggestions := make([]string, 0, len(matches))

	for _, p := range matches {
		if p.DemoURL != nil && *p.DemoURL != "" {
			suggestions = append(suggestions, fmt.Sprintf("You might also like [%s](%s)", p.Title, *p.DemoURL))
		} else {
			suggestions = append(suggestions, fmt.Sprintf("You might also like %s", p.Title))
		}
	}

	return suggestions
}
