package chat

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/assistant"
	"github.com/devfolio/server/internal/buffer"
	"github.com/devfolio/server/internal/errors"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/logger"
	"github.com/devfolio/server/internal/projects"
)

// creates the handler for assistant turns
func Handler(responder Responder, responseCache ResponseCache, logBuffer LogBuffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		query := lastUserMessage(req.Messages)
		if query == "" {
			errors.BadRequest(c, "no user message found", nil)
			return
		}

		ctx := c.Request.Context()

		// cached responses skip retrieval and the model entirely
		if entry := responseCache.Get(ctx, query); entry != nil {
			logger.Debug("cache hit", "query_hash", entry.QueryHash)

			c.JSON(http.StatusOK, Response{
				Message: entry.Response,
				Model:   entry.ModelUsed,
				Cached:  true,
			})
			return
		}

		reply := responder.Respond(ctx, assistant.Request{
			Query:     query,
			History:   historyBefore(req.Messages),
			SessionID: req.SessionID,
		})

		// only answers a model actually produced are cacheable; degraded
		// fallbacks carry the retrieval confidence but no model
		if reply.Model != "" {
			responseCache.Put(ctx, query, reply.Message, reply.Confidence, reply.Model)
		}

		if err := logBuffer.Add(ctx, &buffer.BufferedQueryLog{
			QueryText:  query,
			Embedding:  reply.Embedding,
			SessionID:  req.SessionID,
			ProjectIDs: projectIDs(reply.Projects),
			Confidence: reply.Confidence,
			Timestamp:  time.Now(),
		}); err != nil {
			logger.ErrorErr(err, "failed to buffer query log")
		}

		c.JSON(http.StatusOK, Response{
			Message:     reply.Message,
			Media:       reply.Media,
			Projects:    reply.Projects,
			Suggestions: reply.Suggestions,
			Model:       reply.Model,
		})
	}
}

// the last user turn is the query being answered
func lastUserMessage(messages []llm.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}

	return ""
}

// everything before the final user turn is conversation history
func historyBefore(messages []llm.ChatMessage) []llm.ChatMessage {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[:i]
		}
	}

	return nil
}

func projectIDs(matches []projects.Project) []string {
	ids := make([]string, 0, len(matches))

	for _, p := range matches {
		ids = append(ids, p.ID)
	}

	return ids
}
