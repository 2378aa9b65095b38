package ratelimit

import (
	"strings"

	"github.com/devfolio/server/internal/errors"
	"github.com/devfolio/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// sentinel identity when no client address can be determined
const unknownClient = "unknown"

// returns a gin middleware enforcing the sliding-window limit for the
// routes it is attached to.
//
// Enforcement is advisory: every failure reading or writing limiter state
// fails open, because availability of the assistant takes priority over
// strict counting. Rejected requests are not recorded.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := clientIP(c)
		now := l.now()

		sum, err := l.store.CountSince(ctx, ip, now.Add(-l.window))
		if err != nil {
			logger.ErrorErr(err, "rate limit read failed, failing open", "ip", ip)
			c.Next()
			return
		}

		if sum >= l.max {
			logger.Warn("rate limit exceeded", "ip", ip, "count", sum)
			errors.TooManyRequests(c, "too many requests. please try again later.", int(l.window.Seconds()))
			c.Abort()
			return
		}

		if err := l.store.Record(ctx, ip, 1, now); err != nil {
			logger.ErrorErr(err, "rate limit write failed, failing open", "ip", ip)
		}

		// best-effort sweep of records past the retention horizon
		if removed, err := l.store.DeleteOlderThan(ctx, now.Add(-l.retention)); err != nil {
			logger.ErrorErr(err, "rate limit sweep failed")
		} else if removed > 0 {
			logger.Debug("swept rate limit records", "removed", removed)
		}

		c.Next()
	}
}

// resolves the client identity from a prioritized list of sources:
// the dispatcher-resolved address, then the forwarding headers, then
// the unknown sentinel
func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		// first hop in the chain is the originating client
		if first, _, found := strings.Cut(fwd, ","); found {
			return strings.TrimSpace(first)
		}

		return strings.TrimSpace(fwd)
	}

	if ip := c.GetHeader("X-Real-Ip"); ip != "" {
		return ip
	}

	return unknownClient
}
