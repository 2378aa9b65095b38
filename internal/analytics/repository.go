package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
)

// persists a query log entry. A nil embedding inserts a NULL vector so
// the retry-without-embedding path shares this method.
func (r *Repository) Insert(ctx context.Context, entry QueryLog) error {
	if entry.Embedding == nil {
		if _, err := r.db.Exec(ctx, queryInsertLogNoEmbedding,
			entry.QueryText, nilIfEmpty(entry.SessionID), entry.ProjectIDs, entry.Confidence, entry.Timestamp,
		); err != nil {
			return fmt.Errorf("failed to insert query log: %w", err)
		}

		return nil
	}

	if _, err := r.db.Exec(ctx, queryInsertLog,
		entry.QueryText, pgvector.NewVector(entry.Embedding), nilIfEmpty(entry.SessionID), entry.ProjectIDs, entry.Confidence, entry.Timestamp,
	); err != nil {
		return fmt.Errorf("failed to insert query log with embedding: %w", err)
	}

	return nil
}

// returns low-confidence queries since the cutoff, newest first
func (r *Repository) LowConfidenceSince(ctx context.Context, threshold float64, since time.Time) ([]QueryLog, error) {
	rows, err := r.db.Query(ctx, queryLowConfidenceSince, threshold, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query low-confidence logs: %w", err)
	}
	defer rows.Close()

	var logs []QueryLog

	for rows.Next() {
		var entry QueryLog
		if err := rows.Scan(&entry.QueryText, &entry.Confidence, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan query log: %w", err)
		}

		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query logs: %w", err)
	}

	return logs, nil
}

// aggregates the operator dashboard counters across the log, cache and
// rate-limit tables
func (r *Repository) Stats(ctx context.Context, lowConfidence float64) (*CostStats, error) {
	var stats CostStats

	if err := r.db.QueryRow(ctx, queryLogStats, lowConfidence).Scan(
		&stats.TotalQueries, &stats.LowConfidence, &stats.AvgConfidence,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate query log stats: %w", err)
	}

	stats.HighConfidence = stats.TotalQueries - stats.LowConfidence

	if err := r.db.QueryRow(ctx, queryCacheCount).Scan(&stats.CachedResponses); err != nil {
		return nil, fmt.Errorf("failed to count cached responses: %w", err)
	}

	usage, err := r.modelUsage(ctx)
	if err != nil {
		return nil, err
	}

	stats.ModelUsage = usage

	if err := r.db.QueryRow(ctx, queryRateLimitStats, time.Now().Add(-24*time.Hour)).Scan(
		&stats.RateLimitRecords, &stats.ActiveIPs24h,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate rate limit stats: %w", err)
	}

	return &stats, nil
}

// groups cached responses by the model tier that produced them
func (r *Repository) modelUsage(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, queryModelUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to query model usage: %w", err)
	}
	defer rows.Close()

	usage := map[string]int{}

	for rows.Next() {
		var model string
		var count int

		if err := rows.Scan(&model, &count); err != nil {
			return nil, fmt.Errorf("failed to scan model usage: %w", err)
		}

		usage[model] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model usage: %w", err)
	}

	return usage, nil
}

// removes query logs older than cutoff, returning the number removed
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, queryDeleteOldLogs, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep query logs: %w", err)
	}

	return tag.RowsAffected(), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
