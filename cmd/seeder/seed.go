package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/logger"
	"github.com/devfolio/server/internal/projects"
)

// embeds and inserts the projects from the JSON file at flags.Path
func SeedProjects(cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting project seeding", "path", flags.Path, "clear", flags.Clear)

	records, err := loadSeedRecords(flags.Path)
	if err != nil {
		return err
	}

	repo := projects.NewRepository(db)

	// clear existing projects if requested
	if flags.Clear {
		logger.Info("clearing existing projects")

		if err := repo.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear existing projects: %w", err)
		}
	}

	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	// one batched provider call for all descriptions
	logger.Info("generating embeddings", "count", len(records))

	embeddings, err := embedder.GenerateEmbeddings(ctx, embeddingTexts(records))
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if err := repo.InsertBatch(ctx, records, embeddings); err != nil {
		return fmt.Errorf("failed to insert projects: %w", err)
	}

	logger.Info("successfully seeded projects", "count", len(records))

	return nil
}

func loadSeedRecords(path string) ([]projects.SeedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects file: %w", err)
	}

	var records []projects.SeedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse projects file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no projects found in %s", path)
	}

	return records, nil
}

// the embedded text pairs the title with the description so queries
// naming a project land close to it
func embeddingTexts(records []projects.SeedRecord) []string {
	texts := make([]string, len(records))

	for i, rec := range records {
		texts[i] = fmt.Sprintf("%s: %s", rec.Title, rec.Description)
	}

	return texts
}
