package main

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/assistant"
	"github.com/devfolio/server/internal/auth"
	"github.com/devfolio/server/internal/cache"
	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/mailer"
	"github.com/devfolio/server/internal/projects"
	"github.com/devfolio/server/internal/ratelimit"
	"github.com/devfolio/server/internal/retriever"
)

// creates and wires all service clients and pipeline components
func InitializeServices(cfg *config.Config, db *pgxpool.Pool, projectRepo *projects.Repository) *Services {
	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	chat := llm.NewAnthropicGenerator(llm.AnthropicConfig{
		APIKey: cfg.AnthropicKey,
	})

	retrieverClient := retriever.New(projectRepo, embedder)

	assistantClient := assistant.New(retrieverClient, chat, assistant.Options{
		ModelLow:        cfg.ChatModelLow,
		ModelHigh:       cfg.ChatModelHigh,
		LowConfidence:   cfg.Thresholds.LowConfidence,
		RetrievalLimit:  cfg.Thresholds.RetrievalLimit,
		SuggestionLimit: cfg.Thresholds.SuggestionLimit,
		PortfolioURL:    cfg.PortfolioURL,
	})

	responseCache := cache.New(
		cache.NewPostgresStore(db),
		cfg.Thresholds.CacheHitThreshold,
		cfg.Thresholds.CacheExpiry,
	)

	limiter := ratelimit.New(
		ratelimit.NewPostgresStore(db),
		cfg.Thresholds.RateLimitWindow,
		cfg.Thresholds.RateLimitMax,
		cfg.Thresholds.RateLimitRetention,
	)

	mailerClient := mailer.NewClient(mailer.Config{
		APIKey: cfg.ResendKey,
		From:   cfg.ContactFrom,
		Inbox:  cfg.ContactInbox,
	})

	return &Services{
		Embedder:      embedder,
		Chat:          chat,
		Retriever:     retrieverClient,
		Assistant:     assistantClient,
		Cache:         responseCache,
		Limiter:       limiter,
		Mailer:        mailerClient,
		Authenticator: auth.New(cfg.AdminJWTSecret),
	}
}
