package chat

import (
	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/ratelimit"
)

// registers assistant routes; the limiter gates the whole prefix
func RegisterRoutes(router *gin.RouterGroup, limiter *ratelimit.Limiter, responder Responder, responseCache ResponseCache, logBuffer LogBuffer) {
	group := router.Group("/chat", limiter.Middleware())
	group.POST("", Handler(responder, responseCache, logBuffer))
}
