package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports JSON field names and sees through
// models.Optional: tags apply to the wrapped value and null or absent counts as empty.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if o, ok := field.Interface().(models.Optional[string]); ok && o.Value != nil {
			return *o.Value
		}
		return nil
	}, models.Optional[string]{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if o, ok := field.Interface().(models.Optional[time.Time]); ok && o.Value != nil {
			return *o.Value
		}
		return nil
	}, models.Optional[time.Time]{})
	return validate
}

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "gte", "lte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is out of range (%s %s)", fieldName, fieldError.Tag(), fieldError.Param())
		}
	}
	return errorsMap
}

// bindAndValidate decodes the JSON body into req and validates it, writing a 400 on failure.
func bindAndValidate(c *gin.Context, validate *validator.Validate, req interface{}) bool {
	return bindJSON(c, req) && validateRequest(c, validate, req)
}

// bindJSON decodes the JSON body into req, writing a 400 on failure. Handlers that take
// fields from the path fill them in before calling validateRequest.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

func validateRequest(c *gin.Context, validate *validator.Validate, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// writeServiceError maps a service error onto the response the API promises for it.
func writeServiceError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrConflict):
		body := gin.H{"error": "An application for this company and position already exists"}
		var conflict *storage.ConflictError
		if errors.As(err, &conflict) {
			body["conflicting_fields"] = conflict.Fields
		}
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, services.ErrFollowUpNotSet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Application has no follow-up scheduled"})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:              app.ID,
		CompanyName:     app.CompanyName,
		Position:        app.Position,
		Status:          app.Status.String(),
		RecruiterName:   app.RecruiterName,
		RecruiterEmail:  app.RecruiterEmail,
		JobURL:          app.JobURL,
		SalaryRange:     app.SalaryRange,
		Location:        app.Location,
		FollowUpAt:      app.FollowUpAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
		CreatedAt:       app.CreatedAt,
	}
}

func mapApplications(apps []models.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, MapApplicationModelToResponse(&apps[i]))
	}
	return out
}

// MapEventModelToResponse converts a models.ApplicationEvent to a dto.EventResponse
func MapEventModelToResponse(event *models.ApplicationEvent) dto.EventResponse {
	resp := dto.EventResponse{
		ID:            event.ID,
		ApplicationID: event.ApplicationID,
		EventType:     string(event.EventType),
		Note:          event.Note,
		CreatedAt:     event.CreatedAt,
	}
	if event.FromStatus != nil {
		from := event.FromStatus.String()
		resp.FromStatus = &from
	}
	if event.ToStatus != nil {
		to := event.ToStatus.String()
		resp.ToStatus = &to
	}
	return resp
}
