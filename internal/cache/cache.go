package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/devfolio/server/internal/logger"
)

// returns the deterministic cache key for a query: the sha256 hex digest
// of the lowercased, whitespace-trimmed text, so case and padding
// variants of the same question share one entry
func QueryHash(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	digest := sha256.Sum256([]byte(normalized))

	return hex.EncodeToString(digest[:])
}

// looks up a fresh cached response for the query. Store errors are
// swallowed and reported as a miss - the cache must never fail a request.
func (c *Cache) Get(ctx context.Context, query string) *Entry {
	since := c.now().Add(-c.expiry)

	entry, err := c.store.GetByHash(ctx, QueryHash(query), since)
	if err != nil {
		logger.ErrorErr(err, "cache lookup failed, treating as miss")
		return nil
	}

	return entry
}

// stores a response when its retrieval confidence qualifies, then sweeps
// expired rows best-effort. Below the threshold this is a no-op. Errors
// in the upsert or the sweep are logged and swallowed.
func (c *Cache) Put(ctx context.Context, query, response string, confidence float64, modelUsed string) {
	if confidence < c.hitThreshold {
		return
	}

	now := c.now()

	entry := Entry{
		QueryHash:  QueryHash(query),
		Query:      strings.ToLower(strings.TrimSpace(query)),
		Response:   response,
		Confidence: confidence,
		ModelUsed:  modelUsed,
		Timestamp:  now,
	}

	if err := c.store.Upsert(ctx, entry); err != nil {
		logger.ErrorErr(err, "cache write failed", "query_hash", entry.QueryHash)
		return
	}

	removed, err := c.store.DeleteOlderThan(ctx, now.Add(-c.expiry))
	if err != nil {
		logger.ErrorErr(err, "cache sweep failed")
		return
	}

	if removed > 0 {
		logger.Debug("swept expired cache entries", "removed", removed)
	}
}
