package storage

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mock_storage job-tracker-api/internal/storage UserRepository

import (
	"context"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner starts a transaction. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
}

// ApplicationRepository defines the interface for application data operations.
// Every lookup is scoped to the owning user; foreign rows are reported as ErrNotFound.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error)
	GetForUpdate(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) // Locks the row until the tx ends
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error)
	ListDueFollowUps(ctx context.Context, userID uuid.UUID, deadline time.Time) ([]models.Application, error)
	Update(ctx context.Context, id uuid.UUID, changes *models.ApplicationChanges) (*models.Application, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
	WithTx(tx pgx.Tx) ApplicationRepository
}

// ApplicationEventRepository is the append-only store behind application timelines.
type ApplicationEventRepository interface {
	Create(ctx context.Context, event *models.ApplicationEvent) (*models.ApplicationEvent, error)
	ListTimeline(ctx context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error)
	WithTx(tx pgx.Tx) ApplicationEventRepository
}

// StatusChange is one status_change event as read by the duration analytics.
type StatusChange struct {
	ApplicationID uuid.UUID
	ToStatus      models.ApplicationStatus
	CreatedAt     time.Time
}

type RecruiterStatusCount struct {
	RecruiterEmail string
	Status         models.ApplicationStatus
	Count          int
}

type RecruiterTotal struct {
	RecruiterEmail  string
	Total           int
	LastContactedAt *time.Time
}

// AnalyticsRepository runs read-only aggregate queries scoped to one user.
type AnalyticsRepository interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[models.ApplicationStatus]int, error)
	AvgDaysToStatus(ctx context.Context, userID uuid.UUID) (map[models.ApplicationStatus]float64, error)
	ListStatusChanges(ctx context.Context, userID uuid.UUID) ([]StatusChange, error) // Ordered by application, created_at, id
	CountByRecruiter(ctx context.Context, userID uuid.UUID) ([]RecruiterTotal, error)
	CountByRecruiterAndStatus(ctx context.Context, userID uuid.UUID) ([]RecruiterStatusCount, error)
}
