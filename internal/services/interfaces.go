package services

import (
	"context"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account and token operations.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) // Returns user and token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error)
	DueFollowUps(ctx context.Context, req *dto.DueFollowUpsRequest) ([]models.Application, error)
	Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// EventService defines the interface for application timelines.
type EventService interface {
	AddEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.ApplicationEvent, error)
	Timeline(ctx context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error)
}

// AnalyticsService defines the read-only reporting views over one user's data.
type AnalyticsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error)
	TimeToStatus(ctx context.Context, userID uuid.UUID) (*dto.TimeToStatusResponse, error)
	StatusDuration(ctx context.Context, userID uuid.UUID) (*dto.StatusDurationResponse, error)
	Funnel(ctx context.Context, userID uuid.UUID) (*dto.FunnelResponse, error)
	RecruiterPerformance(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceResponse, error)
	RecruiterPerformanceV2(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceV2Response, error)
}
