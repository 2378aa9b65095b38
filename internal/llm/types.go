package llm

import "context"

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// generates chat completions; the model is chosen per request so the
// cost governor can pick a tier per call
type ChatGenerator interface {
	GenerateText(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// a single conversation turn
type ChatMessage struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// inputs for one chat completion call
type ChatRequest struct {
	Model        string // required: which model tier to call
	SystemPrompt string
	Messages     []ChatMessage
	MaxTokens    int     // 0 means the client default
	Temperature  float32 // 0 means the client default
}

// the generated text plus token accounting
type ChatResponse struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
