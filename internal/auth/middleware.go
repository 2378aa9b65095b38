package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/errors"
)

// validates admin JWTs and adds the subject to the request context
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := a.Validate(parts[1])
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_subject", claims.Subject)

		c.Next()
	}
}

// extracts the admin subject from context after Middleware
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get("admin_subject")
	if !exists {
		return "", false
	}

	return subject.(string), true
}
