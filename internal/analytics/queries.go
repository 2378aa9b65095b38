package analytics

const (
	queryInsertLog = `
		INSERT INTO query_logs (query_text, embedding, session_id, project_ids, confidence, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	queryInsertLogNoEmbedding = `
		INSERT INTO query_logs (query_text, session_id, project_ids, confidence, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`

	queryLowConfidenceSince = `
		SELECT query_text, confidence, timestamp
		FROM query_logs
		WHERE confidence < $1 AND timestamp >= $2
		ORDER BY timestamp DESC
	`

	queryLogStats = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE confidence < $1),
			COALESCE(AVG(confidence), 0)
		FROM query_logs
	`

	queryCacheCount = `SELECT COUNT(*) FROM query_cache`

	queryModelUsage = `
		SELECT model_used, COUNT(*)
		FROM query_cache
		GROUP BY model_used
	`

	queryRateLimitStats = `
		SELECT
			COUNT(*),
			COUNT(DISTINCT ip) FILTER (WHERE timestamp >= $1)
		FROM rate_limits
	`

	queryDeleteOldLogs = `DELETE FROM query_logs WHERE timestamp < $1`
)
