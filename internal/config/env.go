package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEmbeddingModel = "text-embedding-3-small"
	defaultChatModelLow   = "claude-3-haiku-20240307"
	defaultChatModelHigh  = "claude-sonnet-4-20250514"
	defaultPortfolioURL   = "https://devfolio.dev/projects"
)

// returns the documented default thresholds for the assistant pipeline
func DefaultThresholds() Thresholds {
	return Thresholds{
		CacheHitThreshold:  0.8,
		LowConfidence:      0.8,
		CacheExpiry:        24 * time.Hour,
		RateLimitWindow:    time.Hour,
		RateLimitMax:       20,
		RateLimitRetention: 24 * time.Hour,
		QueryLogRetention:  90 * 24 * time.Hour,
		RetrievalLimit:     3,
		SuggestionLimit:    2,
		VersionsKept:       10,
	}
}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	dbConnStr := os.Getenv("SUPABASE_CONNECTION_STRING")
	redisURL := os.Getenv("REDIS_URL")
	adminSecret := os.Getenv("ADMIN_JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if dbConnStr == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if adminSecret == "" {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		OpenAIKey:      openaiKey,
		AnthropicKey:   anthropicKey,
		ResendKey:      os.Getenv("RESEND_API_KEY"), // optional: contact endpoint reports misconfiguration
		DBConnString:   dbConnStr,
		RedisURL:       redisURL,
		AdminJWTSecret: adminSecret,
		Environment:    environment,
		EmbeddingModel: envOrDefault("EMBEDDING_MODEL", defaultEmbeddingModel),
		ChatModelLow:   envOrDefault("CHAT_MODEL_LOW", defaultChatModelLow),
		ChatModelHigh:  envOrDefault("CHAT_MODEL_HIGH", defaultChatModelHigh),
		ContactFrom:    os.Getenv("CONTACT_FROM_ADDRESS"),
		ContactInbox:   os.Getenv("CONTACT_INBOX_ADDRESS"),
		PortfolioURL:   envOrDefault("PORTFOLIO_URL", defaultPortfolioURL),
		Thresholds:     loadThresholds(),
	}, nil
}

// loads thresholds, allowing individual env overrides of the defaults
func loadThresholds() Thresholds {
	t := DefaultThresholds()

	if v, ok := envFloat("CACHE_HIT_THRESHOLD"); ok {
		t.CacheHitThreshold = v
	}

	if v, ok := envFloat("LOW_CONFIDENCE_THRESHOLD"); ok {
		t.LowConfidence = v
	}

	if v, ok := envInt("RATE_LIMIT_MAX"); ok {
		t.RateLimitMax = v
	}

	if v, ok := envInt("CACHE_EXPIRY_HOURS"); ok {
		t.CacheExpiry = time.Duration(v) * time.Hour
	}

	return t
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return v, true
}
