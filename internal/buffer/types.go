package buffer

import "time"

// a query log entry waiting to be flushed to Postgres
type BufferedQueryLog struct {
	QueryText  string    `json:"query_text"`
	Embedding  []float32 `json:"embedding,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	ProjectIDs []string  `json:"project_ids"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// redis key patterns
const (
	// query_logs:pending - list of unflushed log entries as JSON
	keyPendingLogs = "query_logs:pending"
)
