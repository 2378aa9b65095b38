package contact

import (
	"github.com/gin-gonic/gin"
)

// registers contact routes
func RegisterRoutes(router *gin.RouterGroup, sender Sender) {
	router.POST("/contact", Handler(sender))
}
