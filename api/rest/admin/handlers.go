package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/analytics"
	"github.com/devfolio/server/internal/errors"
)

const defaultReportDays = 30

// creates the handler for the cost/monitoring counters
func StatsHandler(repo StatsProvider, lowConfidence float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.Stats(c.Request.Context(), lowConfidence)
		if err != nil {
			errors.InternalError(c, "failed to aggregate stats", err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// creates the handler for the content gap report
func GapsHandler(repo StatsProvider, lowConfidence float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := defaultReportDays

		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				errors.BadRequest(c, "days must be a positive integer", err)
				return
			}

			days = parsed
		}

		since := time.Now().AddDate(0, 0, -days)

		logs, err := repo.LowConfidenceSince(c.Request.Context(), lowConfidence, since)
		if err != nil {
			errors.InternalError(c, "failed to load query logs", err)
			return
		}

		stats, err := repo.Stats(c.Request.Context(), lowConfidence)
		if err != nil {
			errors.InternalError(c, "failed to aggregate stats", err)
			return
		}

		c.JSON(http.StatusOK, analytics.BuildGapReport(logs, stats.TotalQueries, since))
	}
}
