package contact

import (
	"context"

	"github.com/devfolio/server/internal/mailer"
)

// Request represents a contact form submission
type Request struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiryType"`
}

// Response confirms a delivered submission
type Response struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// mail delivery surface; implemented by the mailer client, injected so
// tests can substitute fakes
type Sender interface {
	SendContact(ctx context.Context, msg mailer.ContactMessage) (string, error)
}
