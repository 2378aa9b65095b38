package config

import "time"

type Config struct {
	OpenAIKey       string
	AnthropicKey    string
	ResendKey       string
	DBConnString    string
	RedisURL        string
	AdminJWTSecret  string
	Environment     string
	EmbeddingModel  string
	ChatModelLow    string
	ChatModelHigh   string
	ContactFrom     string
	ContactInbox    string
	PortfolioURL    string
	Thresholds      Thresholds
}

// Thresholds carries every tunable the assistant pipeline gates on.
// Defaults are documented on DefaultThresholds; all values are injected
// rather than read as package constants.
type Thresholds struct {
	// minimum retrieval confidence to cache a response
	CacheHitThreshold float64
	// confidence at or below which the cheap model tier is used,
	// and below which the no-LLM fallback branch is taken
	LowConfidence float64
	// cache entries older than this are treated as absent and swept
	CacheExpiry time.Duration
	// trailing window for the per-IP request count
	RateLimitWindow time.Duration
	// maximum admitted requests per IP within the window
	RateLimitMax int
	// rate-limit records older than this are swept (kept longer than
	// the window for debugging)
	RateLimitRetention time.Duration
	// query logs older than this are swept
	QueryLogRetention time.Duration
	// how many projects a retrieval returns
	RetrievalLimit int
	// how many "you might also like" suggestions to attach
	SuggestionLimit int
	// embedding snapshots kept per project
	VersionsKept int
}

type Flags struct {
	Path  string
	Clear bool
}
