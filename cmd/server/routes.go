package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/api/rest/admin"
	"github.com/devfolio/server/api/rest/chat"
	"github.com/devfolio/server/api/rest/contact"
	"github.com/devfolio/server/api/rest/health"
	projectroutes "github.com/devfolio/server/api/rest/projects"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.Environment))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		chat.RegisterRoutes(v1, server.services.Limiter, server.services.Assistant, server.services.Cache, server.buffer)
		contact.RegisterRoutes(v1, server.services.Mailer)
		projectroutes.RegisterRoutes(v1, server.projectRepo)
		admin.RegisterRoutes(v1, server.services.Authenticator, server.analyticsRepo, server.config.Thresholds.LowConfidence)
	}
}

// allows the portfolio frontend to call the API from the browser
func CORSMiddleware(environment string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if environment == "production" {
		corsConfig.AllowOrigins = []string{"https://devfolio.dev", "https://www.devfolio.dev"}
	} else {
		corsConfig.AllowAllOrigins = true
	}

	return cors.New(corsConfig)
}
