package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

const resendEmailsURL = "https://api.resend.com/emails"

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type providerError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// delivers a contact submission to the configured inbox, returning the
// provider's message ID
func (c *Client) SendContact(ctx context.Context, msg ContactMessage) (string, error) {
	if c.config.APIKey == "" || c.config.From == "" || c.config.Inbox == "" {
		return "", ErrMissingConfig
	}

	reqBody := sendRequest{
		From:    c.config.From,
		To:      []string{c.config.Inbox},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio contact: %s", subjectLine(msg)),
		HTML:    renderBody(msg),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", resendEmailsURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp)
	}

	var sendResp sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return sendResp.ID, nil
}

// maps a non-200 provider reply onto the typed error taxonomy
func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body) //nolint:errcheck

	var perr providerError
	_ = json.Unmarshal(body, &perr) //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuth, perr.Message)
	case resp.StatusCode == http.StatusUnprocessableEntity,
		strings.Contains(strings.ToLower(perr.Message), "domain"):
		return fmt.Errorf("%w: %s", ErrInvalidSender, perr.Message)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, string(body))
	}
}

func subjectLine(msg ContactMessage) string {
	if msg.InquiryType != "" {
		return fmt.Sprintf("%s (%s)", msg.Name, msg.InquiryType)
	}

	return msg.Name
}

func renderBody(msg ContactMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(msg.Email))

	if msg.InquiryType != "" {
		fmt.Fprintf(&b, "<p><strong>Inquiry:</strong> %s</p>", html.EscapeString(msg.InquiryType))
	}

	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(msg.Message))

	return b.String()
}
