package dto

import (
	"time"

	"job-tracker-api/internal/models"

	"github.com/google/uuid"
)

// CreateEventRequest records a manual timeline entry (a note by default).
type CreateEventRequest struct {
	ApplicationID uuid.UUID        `json:"-" validate:"required"` // From path
	UserID        uuid.UUID        `json:"-"`
	EventType     models.EventType `json:"event_type,omitempty" validate:"omitempty,oneof=note follow_up contact"`
	Note          *string          `json:"note,omitempty" validate:"omitempty,max=2000"`
}

type GetTimelineRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
}

// EventResponse defines the timeline entry returned to the client.
type EventResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	EventType     string    `json:"event_type"`
	FromStatus    *string   `json:"from_status"`
	ToStatus      *string   `json:"to_status"`
	Note          *string   `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}
