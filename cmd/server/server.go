package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/analytics"
	"github.com/devfolio/server/internal/buffer"
	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/projects"
)

const (
	// how often the flusher writes buffered query logs to Postgres
	bufferFlushInterval = 15 * time.Second
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DBConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for supabase pooler (PgBouncer) compatibility
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	projectRepo := projects.NewRepository(db)
	analyticsRepo := analytics.NewRepository(db)

	// initialize Redis buffer for query log writes
	queryBuffer, err := buffer.NewQueryBuffer(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis buffer: %w", err)
	}

	// create flusher to periodically persist buffered logs to Postgres
	flusher := buffer.NewFlusher(queryBuffer, analyticsRepo, bufferFlushInterval, cfg.Thresholds.QueryLogRetention)

	services := InitializeServices(cfg, db, projectRepo)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:            db,
		config:        cfg,
		projectRepo:   projectRepo,
		analyticsRepo: analyticsRepo,
		services:      services,
		router:        router,
		buffer:        queryBuffer,
		flusher:       flusher,
	}

	RegisterRoutes(router, server)

	return server, nil
}
