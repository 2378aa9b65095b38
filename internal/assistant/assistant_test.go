package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/projects"
	"github.com/devfolio/server/internal/retriever"
)

type fakeRetriever struct {
	result           *retriever.Result
	err              error
	suggestions      []string
	suggestionsCalls int
	lastExcluded     []string
}

func (f *fakeRetriever) RetrieveProjects(_ context.Context, _ string, _ int) (*retriever.Result, error) {
	return f.result, f.err
}

func (f *fakeRetriever) Suggestions(_ context.Context, excludeIDs []string, _ string, _ int) []string {
	f.suggestionsCalls++
	f.lastExcluded = excludeIDs

	return f.suggestions
}

type fakeChat struct {
	response *llm.ChatResponse
	err      error
	calls    int
	lastReq  llm.ChatRequest
}

func (f *fakeChat) GenerateText(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	f.lastReq = req

	return f.response, f.err
}

func strptr(s string) *string { return &s }

func testOptions() Options {
	return Options{
		ModelLow:        "low-tier",
		ModelHigh:       "high-tier",
		LowConfidence:   0.8,
		RetrievalLimit:  3,
		SuggestionLimit: 2,
		PortfolioURL:    "https://example.dev/projects",
	}
}

func TestSelectModelBoundary(t *testing.T) {
	a := New(nil, nil, testOptions())

	cases := []struct {
		confidence float64
		want       string
	}{
		{0.7, "low-tier"},
		{0.8, "low-tier"}, // inclusive low side
		{0.9, "high-tier"},
	}

	for _, tc := range cases {
		if got := a.SelectModel(tc.confidence); got != tc.want {
			t.Errorf("SelectModel(%v) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}

func TestHighConfidenceUsesModel(t *testing.T) {
	project := projects.Project{ID: "p1", Title: "Visualizer", Description: "Sorting visualizer"}

	ret := &fakeRetriever{
		result: &retriever.Result{
			Projects:   []projects.Project{project},
			Confidence: 0.92,
			Context:    "Visualizer: Sorting visualizer",
		},
		suggestions: []string{"You might also like Synth"},
	}
	chat := &fakeChat{response: &llm.ChatResponse{Text: "The Visualizer animates sorting algorithms.", Model: "high-tier"}}

	a := New(ret, chat, testOptions())

	resp := a.Respond(context.Background(), Request{Query: "tell me about the visualizer"})

	if chat.calls != 1 {
		t.Fatalf("expected one chat call, got %d", chat.calls)
	}

	if chat.lastReq.Model != "high-tier" {
		t.Errorf("expected the high tier at 0.92 confidence, got %q", chat.lastReq.Model)
	}

	if !strings.Contains(chat.lastReq.SystemPrompt, "Visualizer: Sorting visualizer") {
		t.Error("expected the retrieval context inside the system prompt")
	}

	if resp.Message != "The Visualizer animates sorting algorithms." {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	if len(resp.Projects) != 1 || resp.Projects[0].ID != "p1" {
		t.Error("expected the retrieved project attached to the response")
	}

	if len(resp.Suggestions) != 1 {
		t.Errorf("expected suggestions attached, got %d", len(resp.Suggestions))
	}
}

func TestLowConfidenceSkipsModel(t *testing.T) {
	ret := &fakeRetriever{
		result: &retriever.Result{
			Projects:   []projects.Project{{ID: "p1", Title: "Visualizer"}},
			Confidence: 0.4,
		},
		suggestions: []string{},
	}
	chat := &fakeChat{}

	a := New(ret, chat, testOptions())

	resp := a.Respond(context.Background(), Request{Query: "what is the meaning of life"})

	if chat.calls != 0 {
		t.Fatalf("expected no chat call below the threshold, got %d", chat.calls)
	}

	if !strings.Contains(resp.Message, "couldn't find an exact match") {
		t.Errorf("expected the fallback phrase, got %q", resp.Message)
	}

	if !strings.Contains(resp.Message, "https://example.dev/projects") {
		t.Error("expected the portfolio link inside the fallback message")
	}

	if len(resp.Projects) != 1 {
		t.Error("expected the low-relevance projects still attached")
	}
}

func TestThresholdConfidenceSkipsModel(t *testing.T) {
	// confidence exactly at the threshold is not "< threshold", so the
	// grounded branch runs but routes to the cheap tier
	ret := &fakeRetriever{
		result: &retriever.Result{
			Projects:   []projects.Project{{ID: "p1", Title: "Visualizer", Description: "d"}},
			Confidence: 0.8,
			Context:    "Visualizer: d",
		},
		suggestions: []string{},
	}
	chat := &fakeChat{response: &llm.ChatResponse{Text: "reply"}}

	a := New(ret, chat, testOptions())

	a.Respond(context.Background(), Request{Query: "visualizer"})

	if chat.calls != 1 {
		t.Fatalf("expected a chat call at the exact threshold, got %d", chat.calls)
	}

	if chat.lastReq.Model != "low-tier" {
		t.Errorf("expected the low tier at the exact threshold, got %q", chat.lastReq.Model)
	}
}

func TestRetrievalErrorReturnsApology(t *testing.T) {
	ret := &fakeRetriever{err: errors.New("embedding provider down")}
	chat := &fakeChat{}

	a := New(ret, chat, testOptions())

	resp := a.Respond(context.Background(), Request{Query: "anything"})

	if chat.calls != 0 {
		t.Error("expected no chat call after a retrieval failure")
	}

	if resp.Message != apologyMessage {
		t.Errorf("expected the apology message, got %q", resp.Message)
	}

	if resp.Projects == nil || len(resp.Projects) != 0 {
		t.Error("expected an empty projects slice")
	}
}

func TestChatErrorDegradesToFallback(t *testing.T) {
	ret := &fakeRetriever{
		result: &retriever.Result{
			Projects:   []projects.Project{{ID: "p1", Title: "Visualizer", Description: "d"}},
			Confidence: 0.95,
			Context:    "Visualizer: d",
		},
		suggestions: []string{"You might also like Synth"},
	}
	chat := &fakeChat{err: errors.New("overloaded")}

	a := New(ret, chat, testOptions())

	resp := a.Respond(context.Background(), Request{Query: "visualizer"})

	if !strings.Contains(resp.Message, "couldn't find an exact match") {
		t.Errorf("expected degradation to the fallback message, got %q", resp.Message)
	}

	if len(resp.Projects) != 1 {
		t.Error("expected the retrieved projects preserved on degradation")
	}

	if len(resp.Suggestions) != 1 {
		t.Error("expected suggestions preserved on degradation")
	}

	// callers gate caching on the model tag, so a degraded reply must
	// not claim one
	if resp.Model != "" {
		t.Errorf("expected an empty model on degradation, got %q", resp.Model)
	}
}

func TestMediaSelection(t *testing.T) {
	cases := []struct {
		name string
		top  projects.Project
		want string
	}{
		{"image preferred", projects.Project{ImageURL: strptr("https://img"), DemoURL: strptr("https://demo")}, "https://img"},
		{"demo fallback", projects.Project{DemoURL: strptr("https://demo")}, "https://demo"},
		{"neither", projects.Project{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := topMedia([]projects.Project{tc.top}); got != tc.want {
				t.Errorf("topMedia = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSuggestionsExcludeRetrievedIDs(t *testing.T) {
	ret := &fakeRetriever{
		result: &retriever.Result{
			Projects:   []projects.Project{{ID: "p1"}, {ID: "p2"}},
			Confidence: 0.5,
		},
		suggestions: []string{},
	}

	a := New(ret, &fakeChat{}, testOptions())

	a.Respond(context.Background(), Request{Query: "q"})

	if len(ret.lastExcluded) != 2 || ret.lastExcluded[0] != "p1" || ret.lastExcluded[1] != "p2" {
		t.Errorf("expected the retrieved IDs excluded from suggestions, got %v", ret.lastExcluded)
	}
}
