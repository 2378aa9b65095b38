package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryCountSince = `
		SELECT COALESCE(SUM(count), 0)
		FROM rate_limits
		WHERE ip = $1 AND timestamp >= $2
	`

	queryRecord = `
		INSERT INTO rate_limits (ip, count, timestamp)
		VALUES ($1, $2, $3)
	`

	queryDeleteOld = `DELETE FROM rate_limits WHERE timestamp < $1`
)

// Postgres-backed limiter store
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CountSince(ctx context.Context, ip string, since time.Time) (int, error) {
	var sum int

	if err := s.db.QueryRow(ctx, queryCountSince, ip, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum rate limit records: %w", err)
	}

	return sum, nil
}

func (s *PostgresStore) Record(ctx context.Context, ip string, count int, at time.Time) error {
	if _, err := s.db.Exec(ctx, queryRecord, ip, count, at); err != nil {
		return fmt.Errorf("failed to insert rate limit record: %w", err)
	}

	return nil
}

func (s *PostgresStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, queryDeleteOld, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep rate limit records: %w", err)
	}

	return tag.RowsAffected(), nil
}
