package admin

import (
	"context"
	"time"

	"github.com/devfolio/server/internal/analytics"
)

// analytics surface for the operator dashboard; implemented by the
// analytics repository, injected so tests can substitute fakes
type StatsProvider interface {
	Stats(ctx context.Context, lowConfidence float64) (*analytics.CostStats, error)
	LowConfidenceSince(ctx context.Context, threshold float64, since time.Time) ([]analytics.QueryLog, error)
}
