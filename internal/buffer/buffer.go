package buffer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/server/internal/logger"
)

// Redis-backed buffer for query log entries so the chat path never
// blocks on a Postgres analytics write
type QueryBuffer struct {
	client *redis.Client
}

// creates a new query buffer with a Redis connection
func NewQueryBuffer(redisURL string) (*QueryBuffer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &QueryBuffer{client: client}, nil
}

// closes the Redis connection
func (b *QueryBuffer) Close() error {
	return b.client.Close()
}

// appends an entry to the pending list
func (b *QueryBuffer) Add(ctx context.Context, entry *BufferedQueryLog) error {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal query log entry: %w", err)
	}

	if err := b.client.RPush(ctx, keyPendingLogs, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to buffer query log entry: %w", err)
	}

	return nil
}

// retrieves and clears all pending entries
func (b *QueryBuffer) Drain(ctx context.Context) ([]BufferedQueryLog, error) {
	entryJSONs, err := b.client.LRange(ctx, keyPendingLogs, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read pending query logs: %w", err)
	}

	if len(entryJSONs) == 0 {
		return nil, nil
	}

	entries := make([]BufferedQueryLog, 0, len(entryJSONs))

	for _, entryJSON := range entryJSONs {
		var entry BufferedQueryLog
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			logger.ErrorErr(err, "failed to unmarshal buffered query log")
			continue
		}

		entries = append(entries, entry)
	}

	// trim exactly what was read so entries buffered mid-drain survive
	if err := b.client.LTrim(ctx, keyPendingLogs, int64(len(entryJSONs)), -1).Err(); err != nil {
		return entries, fmt.Errorf("failed to trim pending query logs: %w", err)
	}

	return entries, nil
}

// returns the underlying Redis client for advanced operations
func (b *QueryBuffer) Client() *redis.Client {
	return b.client
}
