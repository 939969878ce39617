package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected" // Terminal, reachable from anywhere
)

// AllApplicationStatuses lists every status in reporting order.
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// StatusPipeline is the ordered, non-terminal progression of an application.
var StatusPipeline = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusAccepted,
}

// IsValid reports whether s is a member of the closed status enum.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// PipelineIndex returns the position of s in StatusPipeline, or -1 when s is outside it.
func (s ApplicationStatus) PipelineIndex() int {
	for i, step := range StatusPipeline {
		if step == s {
			return i
		}
	}
	return -1
}

func (s ApplicationStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Application Event Type Enum ---
type EventType string

const (
	EventTypeStatusChange EventType = "status_change"
	EventTypeFollowUp     EventType = "follow_up"
	EventTypeNote         EventType = "note"
	EventTypeContact      EventType = "contact"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeStatusChange, EventTypeFollowUp, EventTypeNote, EventTypeContact:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for EventType
func (t *EventType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan EventType: value is not string or []byte")
		}
	}
	v := EventType(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid EventType value: %s", strVal)
	}
	*t = v
	return nil
}

// Value implements the driver.Valuer interface for EventType
func (t EventType) Value() (driver.Value, error) {
	return string(t), nil
}

// User is an account owning tracked applications.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Application is one user's tracked job application.
// (user_id, company_name, position) is unique.
type Application struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	UserID          uuid.UUID         `json:"user_id" db:"user_id"`
	CompanyName     string            `json:"company_name" db:"company_name"`
	Position        string            `json:"position" db:"position"`
	Status          ApplicationStatus `json:"status" db:"status"`
	RecruiterName   *string           `json:"recruiter_name,omitempty" db:"recruiter_name"`
	RecruiterEmail  *string           `json:"recruiter_email,omitempty" db:"recruiter_email"`
	JobURL          *string           `json:"job_url,omitempty" db:"job_url"`
	SalaryRange     *string           `json:"salary_range,omitempty" db:"salary_range"`
	Location        *string           `json:"location,omitempty" db:"location"`
	FollowUpAt      *time.Time        `json:"follow_up_at,omitempty" db:"follow_up_at"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at,omitempty" db:"status_updated_at"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}

// ApplicationEvent is an immutable fact in an application's timeline.
// FromStatus and ToStatus are only populated for status_change events.
type ApplicationEvent struct {
	ID            uuid.UUID          `json:"id" db:"id"`
	ApplicationID uuid.UUID          `json:"application_id" db:"application_id"`
	UserID        uuid.UUID          `json:"user_id" db:"user_id"`
	EventType     EventType          `json:"event_type" db:"event_type"`
	FromStatus    *ApplicationStatus `json:"from_status,omitempty" db:"from_status"`
	ToStatus      *ApplicationStatus `json:"to_status,omitempty" db:"to_status"`
	Note          *string            `json:"note,omitempty" db:"note"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
}

// ApplicationChanges holds the column values one update writes in a single batch.
// Nil pointers and unset Optionals leave the stored value untouched.
type ApplicationChanges struct {
	CompanyName     *string
	Position        *string
	Status          *ApplicationStatus
	StatusUpdatedAt *time.Time
	RecruiterName   Optional[string]
	RecruiterEmail  Optional[string]
	JobURL          Optional[string]
	SalaryRange     Optional[string]
	Location        Optional[string]
	FollowUpAt      Optional[time.Time]
}

// IsEmpty reports whether the changes would write nothing.
func (c ApplicationChanges) IsEmpty() bool {
	return c.CompanyName == nil && c.Position == nil && c.Status == nil && c.StatusUpdatedAt == nil &&
		!c.RecruiterName.Set && !c.RecruiterEmail.Set && !c.JobURL.Set &&
		!c.SalaryRange.Set && !c.Location.Set && !c.FollowUpAt.Set
}
