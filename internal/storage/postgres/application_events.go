package postgres

import (
	"context"
	"fmt"
	"log"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationEventRepo implements the storage.ApplicationEventRepository interface using PostgreSQL.
type ApplicationEventRepo struct {
	db Querier
}

// NewApplicationEventRepo creates a new ApplicationEventRepo.
func NewApplicationEventRepo(db *pgxpool.Pool) *ApplicationEventRepo {
	return &ApplicationEventRepo{db: db}
}

// WithTx creates a new ApplicationEventRepo bound to the transaction.
func (r *ApplicationEventRepo) WithTx(tx pgx.Tx) storage.ApplicationEventRepository {
	return &ApplicationEventRepo{db: tx}
}

var _ storage.ApplicationEventRepository = (*ApplicationEventRepo)(nil)

const eventColumns = `id, application_id, user_id, event_type, from_status, to_status, note, created_at`

// Create appends an event. IDs are UUIDv7 so that id order follows insertion order,
// which breaks ties between events sharing a transaction timestamp.
func (r *ApplicationEventRepo) Create(ctx context.Context, event *models.ApplicationEvent) (*models.ApplicationEvent, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate event id: %w", err)
	}

	query := `
		INSERT INTO application_events (id, application_id, user_id, event_type, from_status, to_status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + eventColumns

	rows, err := r.db.Query(ctx, query,
		id,
		event.ApplicationID,
		event.UserID,
		event.EventType,
		event.FromStatus,
		event.ToStatus,
		event.Note,
	)
	if err != nil {
		return nil, mapWriteError(err, "create application event")
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ApplicationEvent])
	if err != nil {
		log.Printf("Error creating %s event for application %s: %v\n", event.EventType, event.ApplicationID, err)
		return nil, mapWriteError(err, "create application event")
	}

	log.Printf("Application event %s (%s) appended to application %s", created.ID, created.EventType, created.ApplicationID)
	return &created, nil
}

// ListTimeline returns the application's events, most recent first.
func (r *ApplicationEventRepo) ListTimeline(ctx context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM application_events
		WHERE user_id = $1 AND application_id = $2
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, req.UserID, req.ApplicationID)
	if err != nil {
		log.Printf("Error querying timeline for application %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApplicationEvent])
	if err != nil {
		log.Printf("Error scanning timeline for application %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to scan timeline: %w", err)
	}

	if events == nil {
		events = []models.ApplicationEvent{}
	}

	return events, nil
}
