package handlers

import (
	"log"
	"net/http"

	"job-tracker-api/internal/api/middleware"
	"job-tracker-api/internal/models"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application and timeline operations.
type ApplicationHandler struct {
	service      services.ApplicationService
	events       services.EventService
	validator    *validator.Validate
	followUpDays int // horizon used when the days query is omitted
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, events services.EventService, validate *validator.Validate, followUpDays int) *ApplicationHandler {
	return &ApplicationHandler{
		service:      service,
		events:       events,
		validator:    validate,
		followUpDays: followUpDays,
	}
}

// currentUser reads the authenticated user, writing a 401 when it is missing.
func currentUser(c *gin.Context, operation string) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("%s: Error getting user ID from context: %v", operation, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// applicationID parses the :id path parameter, writing a 400 when it is not a UUID.
func applicationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateApplication godoc
//	@Summary		Track a new application
//	@Description	Creates an application for the logged-in user. Status defaults to applied.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.CreateApplicationRequest	true	"Application details"
//	@Success		201			{object}	dto.ApplicationResponse			"Application created"
//	@Failure		400			{object}	map[string]string				"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		409			{object}	map[string]interface{}			"Conflict - Duplicate company and position"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := currentUser(c, "CreateApplication")
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	app, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "CreateApplication", err)
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(app))
}

// ListApplications godoc
//	@Summary		List applications
//	@Description	Lists the logged-in user's applications with filters, sorting and pagination.
//	@Tags			applications
//	@Produce		json
//	@Param			status		query		string	false	"Exact status"	Enums(applied, screening, interview, offer, accepted, rejected)
//	@Param			company		query		string	false	"Company name contains (case-insensitive)"
//	@Param			q			query		string	false	"Search company, position and recruiter email"
//	@Param			sort		query		string	false	"Sort field, prefix with - for descending"	default(-created_at)
//	@Param			page		query		int		false	"Page number"	default(1)	minimum(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	minimum(1)	maximum(100)
//	@Success		200			{object}	dto.PaginatedApplicationsResponse
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid query"
//	@Failure		401			{object}	map[string]string	"Unauthorized"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := currentUser(c, "ListApplications")
	if !ok {
		return
	}

	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	apps, total, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "ListApplications", err)
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedApplicationsResponse{
		Items:    mapApplications(apps),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// ListDueFollowUps godoc
//	@Summary		List due follow-ups
//	@Description	Lists applications whose follow-up falls on or before now plus the given number of days, soonest first.
//	@Tags			applications
//	@Produce		json
//	@Param			days	query		int	false	"Horizon in days, defaults to the configured horizon"	minimum(1)	maximum(30)
//	@Success		200		{array}		dto.ApplicationResponse
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid query"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/followups [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListDueFollowUps(c *gin.Context) {
	userID, ok := currentUser(c, "ListDueFollowUps")
	if !ok {
		return
	}

	var req dto.DueFollowUpsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if _, present := c.GetQuery("days"); !present {
		req.Days = h.followUpDays
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	apps, err := h.service.DueFollowUps(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "ListDueFollowUps", err)
		return
	}

	c.JSON(http.StatusOK, mapApplications(apps))
}

// GetApplicationByID godoc
//	@Summary		Get an application
//	@Description	Retrieves one of the logged-in user's applications.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationResponse
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Application Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	userID, ok := currentUser(c, "GetApplicationByID")
	if !ok {
		return
	}
	appID, ok := applicationID(c)
	if !ok {
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), &dto.GetApplicationRequest{ID: appID, UserID: userID})
	if err != nil {
		writeServiceError(c, "GetApplicationByID", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// UpdateApplication godoc
//	@Summary		Update an application
//	@Description	Partially updates an application. Omitted fields are untouched and null clears a nullable field.
//	@Description	Status may only advance one pipeline step at a time or move to rejected.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Application ID"	Format(uuid)
//	@Param			application	body		dto.UpdateApplicationRequest	true	"Fields to change"
//	@Success		200			{object}	dto.ApplicationResponse
//	@Failure		400			{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string		"Unauthorized"
//	@Failure		404			{object}	map[string]string		"Application Not Found"
//	@Failure		409			{object}	map[string]interface{}	"Conflict - Duplicate company and position"
//	@Failure		422			{object}	map[string]string		"Invalid status transition"
//	@Failure		500			{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id} [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	userID, ok := currentUser(c, "UpdateApplication")
	if !ok {
		return
	}
	appID, ok := applicationID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = appID
	req.UserID = userID
	if !validateRequest(c, h.validator, &req) {
		return
	}

	app, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "UpdateApplication", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// DeleteApplication godoc
//	@Summary		Delete an application
//	@Description	Deletes an application together with its timeline.
//	@Tags			applications
//	@Param			id	path	string	true	"Application ID"	Format(uuid)
//	@Success		204	"No Content"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Application Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID, ok := currentUser(c, "DeleteApplication")
	if !ok {
		return
	}
	appID, ok := applicationID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteApplicationRequest{ID: appID, UserID: userID}); err != nil {
		writeServiceError(c, "DeleteApplication", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTimeline godoc
//	@Summary		Application timeline
//	@Description	Lists an application's events, most recent first.
//	@Tags			timeline
//	@Produce		json
//	@Param			id	path		string	true	"Application ID"	Format(uuid)
//	@Success		200	{array}		dto.EventResponse
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Application Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id}/timeline [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetTimeline(c *gin.Context) {
	userID, ok := currentUser(c, "GetTimeline")
	if !ok {
		return
	}
	appID, ok := applicationID(c)
	if !ok {
		return
	}

	events, err := h.events.Timeline(c.Request.Context(), &dto.GetTimelineRequest{ApplicationID: appID, UserID: userID})
	if err != nil {
		writeServiceError(c, "GetTimeline", err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, MapEventModelToResponse(&events[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddNote godoc
//	@Summary		Add a timeline entry
//	@Description	Records a note (default), follow_up or contact event. A follow_up is refused when no follow-up date is set.
//	@Tags			timeline
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Application ID"	Format(uuid)
//	@Param			event	body		dto.CreateEventRequest	true	"Event details"
//	@Success		201		{object}	dto.EventResponse
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		404		{object}	map[string]string	"Application Not Found"
//	@Failure		422		{object}	map[string]string	"No follow-up scheduled or missing note"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id}/notes [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) AddNote(c *gin.Context) {
	userID, ok := currentUser(c, "AddNote")
	if !ok {
		return
	}
	appID, ok := applicationID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ApplicationID = appID
	req.UserID = userID
	if req.EventType == "" {
		req.EventType = models.EventTypeNote
	}
	if !validateRequest(c, h.validator, &req) {
		return
	}

	event, err := h.events.AddEvent(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "AddNote", err)
		return
	}

	c.JSON(http.StatusCreated, MapEventModelToResponse(event))
}
