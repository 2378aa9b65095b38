package projects

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// creates a new project repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all projects in display order, without embeddings
func (r *Repository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	defer rows.Close()

	var results []Project

	for rows.Next() {
		var p Project

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.DemoURL,
			&p.ImageURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		results = append(results, p)
	}

	return results, rows.Err()
}

// returns up to limit projects with non-null embeddings ordered by ascending
// distance to the query embedding, optionally excluding a set of IDs
func (r *Repository) SearchNearest(ctx context.Context, embedding []float32, limit int, excludeIDs []string) ([]Project, error) {
	var rows pgx.Rows
	var err error

	vec := pgvector.NewVector(embedding)

	if len(excludeIDs) > 0 {
		rows, err = r.db.Query(ctx, querySearchNearestExcluding, vec, limit, excludeIDs)
	} else {
		rows, err = r.db.Query(ctx, querySearchNearest, vec, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	defer rows.Close()

	var results []Project

	for rows.Next() {
		var p Project
		var emb pgvector.Vector

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.DemoURL,
			&p.ImageURL,
			&emb,
			&p.CreatedAt,
			&p.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		p.Embedding = emb.Slice()
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// deletes all projects (used by the seeder's --clear flag)
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, queryClear); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	return nil
}

// inserts seed records with their embeddings in a single transaction
func (r *Repository) InsertBatch(ctx context.Context, records []SeedRecord, embeddings [][]float32) error {
	if len(records) != len(embeddings) {
		return fmt.Errorf("records and embeddings length mismatch")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}

	for i, rec := range records {
		batch.Queue(queryInsert,
			rec.Title,
			rec.Description,
			nilIfEmpty(rec.DemoURL),
			nilIfEmpty(rec.ImageURL),
			pgvector.NewVector(embeddings[i]),
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := 0; i < len(records); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck,gosec
			return fmt.Errorf("failed to insert project %d: %w", i, err)
		}
	}

	// must close batch results before committing, otherwise connection is still "busy"
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// looks up a project's ID by its title; returns pgx.ErrNoRows when absent
func (r *Repository) IDByTitle(ctx context.Context, title string) (string, error) {
	var id string

	if err := r.db.QueryRow(ctx, queryIDByTitle, title).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

// updates a project and its embedding, snapshotting the previous embedding
// into project_versions first and pruning old snapshots beyond keepVersions
func (r *Repository) UpdateWithVersion(ctx context.Context, id string, rec SeedRecord, embedding []float32, keepVersions int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, querySnapshotVersion, id); err != nil {
		return fmt.Errorf("failed to snapshot project version: %w", err)
	}

	_, err = tx.Exec(ctx, queryUpdate,
		id,
		rec.Title,
		rec.Description,
		nilIfEmpty(rec.DemoURL),
		nilIfEmpty(rec.ImageURL),
		pgvector.NewVector(embedding),
	)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if _, err := tx.Exec(ctx, queryPruneVersions, id, keepVersions); err != nil {
		return fmt.Errorf("failed to prune project versions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
