package analytics

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// one logged assistant query; the embedding is nullable because the
// logging path retries without it when the full write fails
type QueryLog struct {
	ID         string    `json:"id"`
	QueryText  string    `json:"query_text"`
	Embedding  []float32 `json:"-"`
	SessionID  string    `json:"session_id,omitempty"`
	ProjectIDs []string  `json:"project_ids"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// a content gap surfaced by the report: a recurring term from
// low-confidence queries the portfolio has no good answer for
type Gap struct {
	Term    string  `json:"term"`
	Count   int     `json:"count"`
	Example string  `json:"example"`
	AvgConf float64 `json:"avg_confidence"`
}

// aggregation of low-confidence traffic over a reporting window
type GapReport struct {
	Since           time.Time `json:"since"`
	TotalQueries    int       `json:"total_queries"`
	LowConfidence   int       `json:"low_confidence"`
	Gaps            []Gap     `json:"gaps"`
	Recommendations []string  `json:"recommendations"`
}

// read-only counters for the operator dashboard
type CostStats struct {
	TotalQueries     int            `json:"total_queries"`
	LowConfidence    int            `json:"low_confidence"`
	HighConfidence   int            `json:"high_confidence"`
	CachedResponses  int            `json:"cached_responses"`
	AvgConfidence    float64        `json:"avg_confidence"`
	ModelUsage       map[string]int `json:"model_usage"`
	RateLimitRecords int            `json:"rate_limit_records"`
	ActiveIPs24h     int            `json:"active_ips_24h"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
