package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/auth"
)

// registers operator routes; everything under the prefix requires a
// valid admin token
func RegisterRoutes(router *gin.RouterGroup, authenticator *auth.Authenticator, repo StatsProvider, lowConfidence float64) {
	group := router.Group("/admin", authenticator.Middleware())
	group.GET("/stats", StatsHandler(repo, lowConfidence))
	group.GET("/gaps", GapsHandler(repo, lowConfidence))
}
