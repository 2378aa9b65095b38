package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryGetByHash = `
		SELECT query_hash, query, response, confidence, model_used, timestamp
		FROM query_cache
		WHERE query_hash = $1 AND timestamp >= $2
	`

	queryUpsert = `
		INSERT INTO query_cache (query_hash, query, response, confidence, model_used, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (query_hash) DO UPDATE SET
			query = EXCLUDED.query,
			response = EXCLUDED.response,
			confidence = EXCLUDED.confidence,
			model_used = EXCLUDED.model_used,
			timestamp = EXCLUDED.timestamp
	`

	queryDeleteExpired = `DELETE FROM query_cache WHERE timestamp < $1`
)

// Postgres-backed cache store
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetByHash(ctx context.Context, hash string, since time.Time) (*Entry, error) {
	var entry Entry

	err := s.db.QueryRow(ctx, queryGetByHash, hash, since).Scan(
		&entry.QueryHash,
		&entry.Query,
		&entry.Response,
		&entry.Confidence,
		&entry.ModelUsed,
		&entry.Timestamp,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query cache entry: %w", err)
	}

	return &entry, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, entry Entry) error {
	_, err := s.db.Exec(ctx, queryUpsert,
		entry.QueryHash,
		entry.Query,
		entry.Response,
		entry.Confidence,
		entry.ModelUsed,
		entry.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert cache entry: %w", err)
	}

	return nil
}

func (s *PostgresStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, queryDeleteExpired, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep cache entries: %w", err)
	}

	return tag.RowsAffected(), nil
}
