package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// manages HTTP requests to the assistant REST API
type ChatClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new chat REST client
func NewChatClient() *ChatClient {
	endpoint := os.Getenv("DEVFOLIO_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ChatClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// sends the conversation to the chat endpoint
func (c *ChatClient) Send(ctx context.Context, userQuery string, history []Message) (*ChatResponseMsg, error) {
	// LLM APIs reject messages with empty content
	filteredHistory := make([]Message, 0, len(history))

	for _, msg := range history {
		if msg.Content != "" {
			filteredHistory = append(filteredHistory, msg)
		}
	}

	payload := chatRequest{Messages: filteredHistory}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/chat", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ChatResponseMsg{
		userQuery:   userQuery,
		message:     result.Message,
		media:       result.Media,
		suggestions: result.Suggestions,
		cached:      result.Cached,
	}, nil
}

// fetches the portfolio overview listing
func (c *ChatClient) Overview(ctx context.Context) (*OverviewMsg, error) {
	url := fmt.Sprintf("%s/api/v1/projects", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result overviewResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &OverviewMsg{projects: result.Projects}, nil
}

// returns a tea.Cmd that fetches the overview listing
func (c *ChatClient) OverviewCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		resp, err := c.Overview(ctx)
		if err != nil {
			return ChatErrorMsg{userQuery: "overview", err: err}
		}

		return *resp
	}
}

// returns a tea.Cmd that sends a chat request
func (c *ChatClient) SendCmd(userQuery string, history []Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		resp, err := c.Send(ctx, userQuery, history)
		if err != nil {
			return ChatErrorMsg{userQuery: userQuery, err: err}
		}

		return *resp
	}
}

// REST API request/response types

type chatRequest struct {
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Message     string   `json:"message"`
	Media       string   `json:"media,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Cached      bool     `json:"cached,omitempty"`
}

type overviewProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DemoURL     string `json:"demo_url,omitempty"`
}

type overviewResponse struct {
	Projects []overviewProject `json:"projects"`
	Count    int               `json:"count"`
}

type chatErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
