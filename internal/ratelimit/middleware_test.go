package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ip    string
	count int
	at    time.Time
}

// in-memory Store for testing
type fakeStore struct {
	records  []record
	countErr error
	writeErr error
}

func (f *fakeStore) CountSince(_ context.Context, ip string, since time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}

	sum := 0

	for _, r := range f.records {
		if r.ip == ip && !r.at.Before(since) {
			sum += r.count
		}
	}

	return sum, nil
}

func (f *fakeStore) Record(_ context.Context, ip string, count int, at time.Time) error {
	if f.writeErr != nil {
		return f.writeErr
	}

	f.records = append(f.records, record{ip: ip, count: count, at: at})

	return nil
}

func (f *fakeStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	kept := f.records[:0]
	var removed int64

	for _, r := range f.records {
		if r.at.Before(cutoff) {
			removed++
			continue
		}

		kept = append(kept, r)
	}

	f.records = kept

	return removed, nil
}

func newTestRouter(limiter *Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/chat", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = ip + ":12345"
	router.ServeHTTP(w, req)

	return w
}

func TestAllowsUnderLimit(t *testing.T) {
	store := &fakeStore{}
	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "203.0.113.7")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.records, 1)
	assert.Equal(t, "203.0.113.7", store.records[0].ip)
	assert.Equal(t, 1, store.records[0].count)
}

func TestRejectsAtCeiling(t *testing.T) {
	store := &fakeStore{}
	now := time.Now()

	// 20 prior admissions within the trailing hour
	for i := 0; i < 20; i++ {
		store.records = append(store.records, record{ip: "203.0.113.7", count: 1, at: now.Add(-time.Duration(i) * time.Minute)})
	}

	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "203.0.113.7")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
	// the rejected attempt is not recorded
	assert.Len(t, store.records, 20)
}

func TestOtherIPUnaffected(t *testing.T) {
	store := &fakeStore{}
	now := time.Now()

	for i := 0; i < 20; i++ {
		store.records = append(store.records, record{ip: "203.0.113.7", count: 1, at: now})
	}

	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "198.51.100.9")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOldRecordsAgeOut(t *testing.T) {
	store := &fakeStore{}
	now := time.Now()

	// all prior requests fall outside the trailing hour
	for i := 0; i < 20; i++ {
		store.records = append(store.records, record{ip: "203.0.113.7", count: 1, at: now.Add(-2 * time.Hour)})
	}

	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "203.0.113.7")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadErrorFailsOpen(t *testing.T) {
	store := &fakeStore{countErr: errors.New("connection refused")}
	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "203.0.113.7")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWriteErrorFailsOpen(t *testing.T) {
	store := &fakeStore{writeErr: errors.New("read-only replica")}
	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	w := doRequest(router, "203.0.113.7")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSweepRemovesPastRetention(t *testing.T) {
	store := &fakeStore{}
	now := time.Now()

	store.records = append(store.records,
		record{ip: "203.0.113.7", count: 1, at: now.Add(-25 * time.Hour)},
		record{ip: "203.0.113.7", count: 1, at: now.Add(-30 * time.Minute)},
	)

	limiter := New(store, time.Hour, 20, 24*time.Hour)
	router := newTestRouter(limiter)

	doRequest(router, "203.0.113.7")

	for _, r := range store.records {
		assert.False(t, r.at.Before(now.Add(-24*time.Hour)), "expected records past retention to be swept")
	}
}
