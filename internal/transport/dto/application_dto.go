package dto

import (
	"time"

	"job-tracker-api/internal/models"

	"github.com/google/uuid"
)

// CreateApplicationRequest defines the structure for tracking a new application.
type CreateApplicationRequest struct {
	UserID         uuid.UUID                 `json:"-"` // Set from user context
	CompanyName    string                    `json:"company_name" validate:"required,max=255"`
	Position       string                    `json:"position" validate:"required,max=255"`
	Status         *models.ApplicationStatus `json:"status,omitempty" validate:"omitempty,oneof=applied screening interview offer accepted rejected"`
	RecruiterName  *string                   `json:"recruiter_name,omitempty" validate:"omitempty,max=255"`
	RecruiterEmail *string                   `json:"recruiter_email,omitempty" validate:"omitempty,max=255"`
	JobURL         *string                   `json:"job_url,omitempty" validate:"omitempty,max=500"`
	SalaryRange    *string                   `json:"salary_range,omitempty" validate:"omitempty,max=255"`
	Location       *string                   `json:"location,omitempty" validate:"omitempty,max=255"`
	FollowUpAt     *time.Time                `json:"follow_up_at,omitempty"`
}

type GetApplicationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for ownership check
}

// ListApplicationsRequest defines filters, sorting and pagination for listing applications.
type ListApplicationsRequest struct {
	UserID   uuid.UUID                 `json:"-"`
	Status   *models.ApplicationStatus `form:"status" validate:"omitempty,oneof=applied screening interview offer accepted rejected"`
	Company  string                    `form:"company"`
	Q        string                    `form:"q"`
	Sort     string                    `form:"sort,default=-created_at"`
	Page     int                       `form:"page,default=1" validate:"gte=1"`
	PageSize int                       `form:"page_size,default=20" validate:"gte=1,lte=100"`
}

// DueFollowUpsRequest lists applications whose follow-up falls within Days from now.
// A zero Days is replaced by the configured default before validation.
type DueFollowUpsRequest struct {
	UserID uuid.UUID `json:"-"`
	Days   int       `form:"days" validate:"gte=1,lte=30"`
}

// UpdateApplicationRequest is a partial update: only keys present in the body participate.
// An explicit null clears a nullable field.
type UpdateApplicationRequest struct {
	ID             uuid.UUID                  `json:"-" validate:"required"` // From path
	UserID         uuid.UUID                  `json:"-"`
	CompanyName    *string                    `json:"company_name,omitempty" validate:"omitempty,min=1,max=255"`
	Position       *string                    `json:"position,omitempty" validate:"omitempty,min=1,max=255"`
	Status         *models.ApplicationStatus  `json:"status,omitempty" validate:"omitempty,oneof=applied screening interview offer accepted rejected"`
	RecruiterName  models.Optional[string]    `json:"recruiter_name" validate:"omitempty,max=255"`
	RecruiterEmail models.Optional[string]    `json:"recruiter_email" validate:"omitempty,max=255"`
	JobURL         models.Optional[string]    `json:"job_url" validate:"omitempty,max=500"`
	SalaryRange    models.Optional[string]    `json:"salary_range" validate:"omitempty,max=255"`
	Location       models.Optional[string]    `json:"location" validate:"omitempty,max=255"`
	FollowUpAt     models.Optional[time.Time] `json:"follow_up_at"`
}

type DeleteApplicationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// ApplicationResponse defines the application data returned to the client.
type ApplicationResponse struct {
	ID              uuid.UUID  `json:"id"`
	CompanyName     string     `json:"company_name"`
	Position        string     `json:"position"`
	Status          string     `json:"status"`
	RecruiterName   *string    `json:"recruiter_name"`
	RecruiterEmail  *string    `json:"recruiter_email"`
	JobURL          *string    `json:"job_url"`
	SalaryRange     *string    `json:"salary_range"`
	Location        *string    `json:"location"`
	FollowUpAt      *time.Time `json:"follow_up_at"`
	StatusUpdatedAt *time.Time `json:"status_updated_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// PaginatedApplicationsResponse wraps one page of applications.
type PaginatedApplicationsResponse struct {
	Items    []ApplicationResponse `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}
