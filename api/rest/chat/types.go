package chat

import (
	"context"

	"github.com/devfolio/server/internal/assistant"
	"github.com/devfolio/server/internal/buffer"
	"github.com/devfolio/server/internal/cache"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/projects"
)

// Request represents the request body for an assistant turn
type Request struct {
	Messages  []llm.ChatMessage `json:"messages" binding:"required"`
	SessionID string            `json:"session_id"`
}

// Response represents the assistant's reply
type Response struct {
	Message     string             `json:"message"`
	Media       string             `json:"media,omitempty"`
	Projects    []projects.Project `json:"projects,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Model       string             `json:"model,omitempty"`
	Cached      bool               `json:"cached,omitempty"`
}

// orchestrator surface; implemented by the assistant, injected so
// tests can substitute fakes
type Responder interface {
	Respond(ctx context.Context, req assistant.Request) assistant.Response
}

// response cache surface
type ResponseCache interface {
	Get(ctx context.Context, query string) *cache.Entry
	Put(ctx context.Context, query, response string, confidence float64, model string)
}

// query log buffer surface
type LogBuffer interface {
	Add(ctx context.Context, entry *buffer.BufferedQueryLog) error
}
