package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/analytics"
	"github.com/devfolio/server/internal/assistant"
	"github.com/devfolio/server/internal/auth"
	"github.com/devfolio/server/internal/buffer"
	"github.com/devfolio/server/internal/cache"
	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/mailer"
	"github.com/devfolio/server/internal/projects"
	"github.com/devfolio/server/internal/ratelimit"
	"github.com/devfolio/server/internal/retriever"
)

// holds all dependencies and state for the API server
type Server struct {
	db            *pgxpool.Pool
	config        *config.Config
	projectRepo   *projects.Repository
	analyticsRepo *analytics.Repository
	services      *Services
	router        *gin.Engine
	buffer        *buffer.QueryBuffer
	flusher       *buffer.Flusher
}

// holds all external service clients and pipeline components
type Services struct {
	Embedder      *llm.OpenAIEmbedder
	Chat          *llm.AnthropicGenerator
	Retriever     *retriever.Client
	Assistant     *assistant.Assistant
	Cache         *cache.Cache
	Limiter       *ratelimit.Limiter
	Mailer        *mailer.Client
	Authenticator *auth.Authenticator
}
