package assistant

import (
	"context"
	"fmt"

	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/logger"
	"github.com/devfolio/server/internal/projects"
)

const apologyMessage = "Sorry, I'm having trouble answering that right now. Please try again in a moment."

// runs one full assistant turn: retrieve, branch on confidence,
// optionally call the model, attach suggestions.
//
// Every failure past retrieval degrades to a canned message instead of
// an error - a visitor asking about the portfolio should never see a
// stack of infrastructure problems.
func (a *Assistant) Respond(ctx context.Context, req Request) Response {
	result, err := a.retriever.RetrieveProjects(ctx, req.Query, a.retrievalLimit)
	if err != nil {
		logger.ErrorErr(err, "retrieval failed", "session_id", req.SessionID)

		return Response{
			Message:     apologyMessage,
			Projects:    []projects.Project{},
			Suggestions: []string{},
		}
	}

	suggestions := a.retriever.Suggestions(ctx, projectIDs(result.Projects), req.Query, a.suggestionLimit)

	if result.Confidence < a.lowConfidence {
		return Response{
			Message:     a.fallbackMessage(),
			Media:       topMedia(result.Projects),
			Projects:    result.Projects,
			Suggestions: suggestions,
			Confidence:  result.Confidence,
			Embedding:   result.QueryEmbedding,
		}
	}

	model := a.SelectModel(result.Confidence)

	reply, err := a.chat.GenerateText(ctx, llm.ChatRequest{
		Model:        model,
		SystemPrompt: buildSystemPrompt(result.Context),
		Messages:     append(req.History, llm.ChatMessage{Role: "user", Content: req.Query}),
	})
	if err != nil {
		logger.ErrorErr(err, "chat completion failed, degrading to fallback", "model", model, "session_id", req.SessionID)

		return Response{
			Message:     a.fallbackMessage(),
			Media:       topMedia(result.Projects),
			Projects:    result.Projects,
			Suggestions: suggestions,
			Confidence:  result.Confidence,
			Embedding:   result.QueryEmbedding,
		}
	}

	return Response{
		Message:     reply.Text,
		Media:       topMedia(result.Projects),
		Projects:    result.Projects,
		Suggestions: suggestions,
		Confidence:  result.Confidence,
		Model:       model,
		Embedding:   result.QueryEmbedding,
	}
}

// picks the model tier for a retrieval confidence. The boundary is
// inclusive on the low side: a score exactly at the threshold still
// routes to the cheaper model.
func (a *Assistant) SelectModel(confidence float64) string {
	if confidence <= a.lowConfidence {
		return a.modelLow
	}

	return a.modelHigh
}

func (a *Assistant) fallbackMessage() string {
	return fmt.Sprintf(
		"I couldn't find an exact match for that, but feel free to browse the full portfolio at %s - or ask me about a specific project or technology.",
		a.portfolioURL,
	)
}

// the top match's image, else its demo link, else nothing
func topMedia(matches []projects.Project) string {
	if len(matches) == 0 {
		return ""
	}

	top := matches[0]

	if top.ImageURL != nil && *top.ImageURL != "" {
		return *top.ImageURL
	}

	if top.DemoURL != nil && *top.DemoURL != "" {
		return *top.DemoURL
	}

	return ""
}

func projectIDs(matches []projects.Project) []string {
	ids := make([]string, 0, len(matches))

	for _, p := range matches {
		ids = append(ids, p.ID)
	}

	return ids
}
