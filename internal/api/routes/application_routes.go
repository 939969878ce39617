package routes

import (
	"job-tracker-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the application, timeline and analytics routes.
// Every route requires a valid token.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface,
	analyticsHandler handlers.AnalyticsHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.POST("", appHandler.CreateApplication)
		appsGroup.GET("", appHandler.ListApplications)
		appsGroup.GET("/followups", appHandler.ListDueFollowUps)

		analytics := appsGroup.Group("/analytics")
		{
			analytics.GET("/summary", analyticsHandler.Summary)
			analytics.GET("/time-to-status", analyticsHandler.TimeToStatus)
			analytics.GET("/status-duration", analyticsHandler.StatusDuration)
			analytics.GET("/funnel", analyticsHandler.Funnel)
			analytics.GET("/recruiter-performance", analyticsHandler.RecruiterPerformance)
			analytics.GET("/recruiter-performance-v2", analyticsHandler.RecruiterPerformanceV2)
		}

		appsGroup.GET("/:id", appHandler.GetApplicationByID)
		appsGroup.PATCH("/:id", appHandler.UpdateApplication)
		appsGroup.DELETE("/:id", appHandler.DeleteApplication)
		appsGroup.GET("/:id/timeline", appHandler.GetTimeline)
		appsGroup.POST("/:id/notes", appHandler.AddNote)
	}
}
