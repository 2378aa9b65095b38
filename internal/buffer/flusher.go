package buffer

import (
	"context"
	"sync"
	"time"

	"github.com/devfolio/server/internal/analytics"
	"github.com/devfolio/server/internal/logger"
)

// sink for drained entries; implemented by the analytics repository
type LogSink interface {
	Insert(ctx context.Context, entry analytics.QueryLog) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// handles periodic flushing of buffered query logs from Redis to Postgres
type Flusher struct {
	buffer    *QueryBuffer
	sink      LogSink
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// creates a new flusher that periodically flushes Redis to Postgres
func NewFlusher(buffer *QueryBuffer, sink LogSink, interval, retention time.Duration) *Flusher {
	return &Flusher{
		buffer:    buffer,
		sink:      sink,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// begins the background flush loop
func (f *Flusher) Start() {
	f.wg.Add(1)
	go f.run()
	logger.Info("query log flusher started", "interval", f.interval.String())
}

// gracefully stops the flusher and flushes any remaining entries
func (f *Flusher) Stop() {
	close(f.stopCh)
	f.wg.Wait()
	logger.Info("query log flusher stopped")
}

func (f *Flusher) run() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.flush()
		case <-f.stopCh:
			// final flush before stopping
			logger.Info("flushing remaining query logs before shutdown")
			f.flush()
			return
		}
	}
}

func (f *Flusher) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := f.buffer.Drain(ctx)
	if err != nil {
		logger.ErrorErr(err, "failed to drain query log buffer")
	}

	if len(entries) > 0 {
		logger.Debug("flushing query logs", "count", len(entries))
	}

	for i := range entries {
		f.persist(ctx, &entries[i])
	}

	f.sweep(ctx)
}

// writes one entry to Postgres. If the embedding-inclusive write fails,
// retries once without the embedding; if that also fails, re-buffers the
// entry for the next flush.
func (f *Flusher) persist(ctx context.Context, entry *BufferedQueryLog) {
	log := analytics.QueryLog{
		QueryText:  entry.QueryText,
		Embedding:  entry.Embedding,
		SessionID:  entry.SessionID,
		ProjectIDs: entry.ProjectIDs,
		Confidence: entry.Confidence,
		Timestamp:  entry.Timestamp,
	}

	err := f.sink.Insert(ctx, log)
	if err == nil {
		return
	}

	if log.Embedding != nil {
		logger.ErrorErr(err, "failed to persist query log, retrying without embedding")

		log.Embedding = nil
		if err = f.sink.Insert(ctx, log); err == nil {
			return
		}
	}

	logger.ErrorErr(err, "failed to persist query log to postgres")
	f.buffer.Add(ctx, entry) //nolint:errcheck,gosec // best-effort retry
}

// opportunistic sweep of logs past the retention horizon
func (f *Flusher) sweep(ctx context.Context) {
	if removed, err := f.sink.DeleteOlderThan(ctx, time.Now().Add(-f.retention)); err != nil {
		logger.ErrorErr(err, "query log sweep failed")
	} else if removed > 0 {
		logger.Debug("swept query logs", "removed", removed)
	}
}
