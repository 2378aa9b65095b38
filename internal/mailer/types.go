package mailer

import (
	"errors"
	"net/http"
	"time"
)

// typed failures so the contact handler can map each to a status code
var (
	ErrMissingConfig = errors.New("mailer not configured")
	ErrInvalidSender = errors.New("sender domain rejected by provider")
	ErrAuth          = errors.New("mailer credentials rejected")
	ErrProvider      = errors.New("mail provider request failed")
)

// shared HTTP client for Resend API calls
// reuses connection pool and timeout configuration
var resendHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type Config struct {
	APIKey string
	From   string // sender address, must belong to a verified domain
	Inbox  string // destination for contact submissions
}

// delivers contact-form submissions through the Resend API
type Client struct {
	config     Config
	httpClient *http.Client
}

// inputs for one contact delivery
type ContactMessage struct {
	Name        string
	Email       string
	Message     string
	InquiryType string
}

func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: resendHTTPClient,
	}
}
