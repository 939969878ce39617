package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	CreateApplication(c *gin.Context)
	ListApplications(c *gin.Context)
	ListDueFollowUps(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	UpdateApplication(c *gin.Context)
	DeleteApplication(c *gin.Context)
	GetTimeline(c *gin.Context)
	AddNote(c *gin.Context)
}

// AnalyticsHandlerInterface defines the methods needed by the analytics routes.
type AnalyticsHandlerInterface interface {
	Summary(c *gin.Context)
	TimeToStatus(c *gin.Context)
	StatusDuration(c *gin.Context)
	Funnel(c *gin.Context)
	RecruiterPerformance(c *gin.Context)
	RecruiterPerformanceV2(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ AnalyticsHandlerInterface = (*AnalyticsHandler)(nil)
