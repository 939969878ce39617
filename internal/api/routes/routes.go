package routes

import (
	"log"

	"job-tracker-api/internal/api/handlers"
	"job-tracker-api/internal/api/middleware"
	"job-tracker-api/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.EventService, app.Validator, app.Config.FollowUps.DefaultDays)
	analyticsHandler := handlers.NewAnalyticsHandler(app.AnalyticsService)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	limits := app.Config.RateLimit
	registerLimit := middleware.RateLimit(app.Limiter, "register", limits.RegisterLimit, limits.Window)
	loginLimit := middleware.RateLimit(app.Limiter, "login", limits.LoginLimit, limits.Window)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, registerLimit, loginLimit)
	RegisterApplicationRoutes(apiV1, applicationHandler, analyticsHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck(app.HealthChecks()))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
