package projects

import (
	"github.com/gin-gonic/gin"
)

// registers portfolio overview routes
func RegisterRoutes(router *gin.RouterGroup, repo Lister) {
	router.GET("/projects", Handler(repo))
}
