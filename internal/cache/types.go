package cache

import (
	"context"
	"time"
)

// one cached assistant response, keyed by the normalized query hash
type Entry struct {
	QueryHash  string    `json:"query_hash"`
	Query      string    `json:"query"`
	Response   string    `json:"response"`
	Confidence float64   `json:"confidence"`
	ModelUsed  string    `json:"model_used"`
	Timestamp  time.Time `json:"timestamp"`
}

// persistence for cache entries; implemented over Postgres, injected so
// tests can substitute fakes
type Store interface {
	// returns the entry for hash with timestamp >= since, or (nil, nil) on miss
	GetByHash(ctx context.Context, hash string, since time.Time) (*Entry, error)
	// inserts or replaces the entry keyed by its hash
	Upsert(ctx context.Context, entry Entry) error
	// removes entries older than cutoff, returning the number removed
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// confidence-gated response cache with TTL eviction
type Cache struct {
	store        Store
	hitThreshold float64
	expiry       time.Duration
	now          func() time.Time
}

func New(store Store, hitThreshold float64, expiry time.Duration) *Cache {
	return &Cache{
		store:        store,
		hitThreshold: hitThreshold,
		expiry:       expiry,
		now:          time.Now,
	}
}
