package handlers

import (
	"context"
	"net/http"

	"job-tracker-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsHandler serves the read-only reporting views.
type AnalyticsHandler struct {
	service services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// serveReport resolves the caller and writes whatever view fetch produces.
func serveReport[T any](c *gin.Context, operation string, fetch func(ctx context.Context, userID uuid.UUID) (*T, error)) {
	userID, ok := currentUser(c, operation)
	if !ok {
		return
	}
	report, err := fetch(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, operation, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Summary godoc
//	@Summary		Application summary
//	@Description	Total applications and the count per status. Every status is listed.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponse
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/summary [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	serveReport(c, "Summary", h.service.Summary)
}

// TimeToStatus godoc
//	@Summary		Time to current status
//	@Description	Average days from creation to the last status change, grouped by current status.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.TimeToStatusResponse
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/time-to-status [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) TimeToStatus(c *gin.Context) {
	serveReport(c, "TimeToStatus", h.service.TimeToStatus)
}

// StatusDuration godoc
//	@Summary		Time spent in each status
//	@Description	Average days an application stays in a status before moving on, derived from the timeline.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.StatusDurationResponse
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/status-duration [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) StatusDuration(c *gin.Context) {
	serveReport(c, "StatusDuration", h.service.StatusDuration)
}

// Funnel godoc
//	@Summary		Pipeline funnel
//	@Description	Applications at or past each pipeline step. Rejected applications are excluded.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.FunnelResponse
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/funnel [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) Funnel(c *gin.Context) {
	serveReport(c, "Funnel", h.service.Funnel)
}

// RecruiterPerformance godoc
//	@Summary		Applications per recruiter
//	@Description	Counts grouped by normalized recruiter email, busiest first.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.RecruiterPerformanceResponse
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/recruiter-performance [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) RecruiterPerformance(c *gin.Context) {
	serveReport(c, "RecruiterPerformance", h.service.RecruiterPerformance)
}

// RecruiterPerformanceV2 godoc
//	@Summary		Recruiter breakdown
//	@Description	Per recruiter: total, count per status and the latest contact event.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	dto.RecruiterPerformanceV2Response
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/analytics/recruiter-performance-v2 [get]
//	@Security		BearerAuth
func (h *AnalyticsHandler) RecruiterPerformanceV2(c *gin.Context) {
	serveReport(c, "RecruiterPerformanceV2", h.service.RecruiterPerformanceV2)
}
