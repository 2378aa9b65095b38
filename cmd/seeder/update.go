package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/server/internal/config"
	"github.com/devfolio/server/internal/llm"
	"github.com/devfolio/server/internal/logger"
	"github.com/devfolio/server/internal/projects"
)

// re-embeds and updates existing projects by title, snapshotting the
// previous embedding into project_versions. Records with no matching
// title are skipped rather than inserted; use seed for new projects.
func UpdateProjects(cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting project update", "path", flags.Path)

	records, err := loadSeedRecords(flags.Path)
	if err != nil {
		return err
	}

	repo := projects.NewRepository(db)

	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	embeddings, err := embedder.GenerateEmbeddings(ctx, embeddingTexts(records))
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	updated := 0
	skipped := 0

	for i, rec := range records {
		id, err := repo.IDByTitle(ctx, rec.Title)
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn("no existing project with title, skipping", "title", rec.Title)
			skipped++
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to look up project %q: %w", rec.Title, err)
		}

		if err := repo.UpdateWithVersion(ctx, id, rec, embeddings[i], cfg.Thresholds.VersionsKept); err != nil {
			return fmt.Errorf("failed to update project %q: %w", rec.Title, err)
		}

		updated++
	}

	logger.Info("project update complete", "updated", updated, "skipped", skipped)

	return nil
}
