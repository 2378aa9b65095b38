package assistant

import (
	"context"

	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/projects"
	"github.com/devfolio/server/internal/retriever"
)

// retrieval surface the orchestrator composes over; implemented by the
// retriever client, injected so tests can substitute fakes
type Retriever interface {
	RetrieveProjects(ctx context.Context, query string, limit int) (*retriever.Result, error)
	Suggestions(ctx context.Context, excludeIDs []string, query string, max int) []string
}

// inputs for one assistant turn
type Request struct {
	Query     string
	History   []llm.ChatMessage
	SessionID string
}

// a composed assistant reply; the embedding rides along for the
// analytics logging path
type Response struct {
	Message     string
	Media       string
	Projects    []projects.Project
	Suggestions []string
	Confidence  float64
	Model       string
	Embedding   []float32
}

// composes retrieval, suggestions, tier selection and the chat call
// into a single grounded reply
type Assistant struct {
	retriever       Retriever
	chat            llm.ChatGenerator
	modelLow        string
	modelHigh       string
	lowConfidence   float64
	retrievalLimit  int
	suggestionLimit int
	portfolioURL    string
}

type Options struct {
	ModelLow        string
	ModelHigh       string
	LowConfidence   float64
	RetrievalLimit  int
	SuggestionLimit int
	PortfolioURL    string
}

func New(retriever Retriever, chat llm.ChatGenerator, opts Options) *Assistant {
	return &Assistant{
		retriever:       retriever,
		chat:            chat,
		modelLow:        opts.ModelLow,
		modelHigh:       opts.ModelHigh,
		lowConfidence:   opts.LowConfidence,
		retrievalLimit:  opts.RetrievalLimit,
		suggestionLimit: opts.SuggestionLimit,
		portfolioURL:    opts.PortfolioURL,
	}
}
