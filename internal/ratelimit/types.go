package ratelimit

import (
	"context"
	"time"
)

// persistence for rate-limit records; implemented over Postgres,
// injected so tests can substitute fakes
type Store interface {
	// sums the count column for ip across records with timestamp >= since
	CountSince(ctx context.Context, ip string, since time.Time) (int, error)
	// appends a new record; records are never updated in place
	Record(ctx context.Context, ip string, count int, at time.Time) error
	// removes records older than cutoff, returning the number removed
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// sliding-window per-IP request limiter backed by a remote table.
// Retention is longer than the limiting window so recent history
// survives for debugging.
type Limiter struct {
	store     Store
	window    time.Duration
	max       int
	retention time.Duration
	now       func() time.Time
}

func New(store Store, window time.Duration, max int, retention time.Duration) *Limiter {
	return &Limiter{
		store:     store,
		window:    window,
		max:       max,
		retention: retention,
		now:       time.Now,
	}
}
