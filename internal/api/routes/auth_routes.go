package routes

import (
	"job-tracker-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account routes, each behind its own rate limit.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface, registerLimit, loginLimit gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", registerLimit, authHandler.Register)
		auth.POST("/login", loginLimit, authHandler.Login)
	}
}
