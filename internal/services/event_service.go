package services

import (
	"context"
	"fmt"
	"log"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

const defaultFollowUpNote = "Follow-up scheduled"

// eventWriter appends timeline events inside the caller's transaction.
type eventWriter struct {
	apps   storage.ApplicationRepository
	events storage.ApplicationEventRepository
}

func newEventWriter(tx pgx.Tx, apps storage.ApplicationRepository, events storage.ApplicationEventRepository) *eventWriter {
	return &eventWriter{apps: apps.WithTx(tx), events: events.WithTx(tx)}
}

// Append writes a requested event. A follow_up event is only written while the
// application has a follow-up set, and gets a default note when none is given.
// It returns nil, nil when the event is declined.
func (w *eventWriter) Append(ctx context.Context, event *models.ApplicationEvent) (*models.ApplicationEvent, error) {
	if event.EventType == models.EventTypeFollowUp {
		app, err := w.apps.GetByID(ctx, &dto.GetApplicationRequest{ID: event.ApplicationID, UserID: event.UserID})
		if err != nil {
			return nil, mapRepoError(err, fmt.Sprintf("re-reading application %s", event.ApplicationID))
		}
		if app.FollowUpAt == nil {
			log.Printf("EventWriter: Declining follow_up event for application %s without follow-up", event.ApplicationID)
			return nil, nil
		}
		if event.Note == nil {
			event.Note = ptr(defaultFollowUpNote)
		}
	}
	return w.record(ctx, event)
}

// record writes the event unconditionally. The update path uses it for events it
// derived from its own diff.
func (w *eventWriter) record(ctx context.Context, event *models.ApplicationEvent) (*models.ApplicationEvent, error) {
	created, err := w.events.Create(ctx, event)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("appending %s event to application %s", event.EventType, event.ApplicationID))
	}
	return created, nil
}

type eventService struct {
	appRepo   storage.ApplicationRepository
	eventRepo storage.ApplicationEventRepository
	db        storage.TxBeginner
}

// NewEventService creates a new instance of EventService.
func NewEventService(db storage.TxBeginner, appRepo storage.ApplicationRepository, eventRepo storage.ApplicationEventRepository) EventService {
	return &eventService{
		appRepo:   appRepo,
		eventRepo: eventRepo,
		db:        db,
	}
}

// AddEvent records a manual note, follow_up or contact entry on an owned application.
func (s *eventService) AddEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.ApplicationEvent, error) {
	eventType := req.EventType
	if eventType == "" {
		eventType = models.EventTypeNote
	}
	if eventType == models.EventTypeNote && (req.Note == nil || *req.Note == "") {
		return nil, fmt.Errorf("%w: note text is required", ErrValidation)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("AddEvent: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Ownership check; a foreign application reads as not found.
	if _, err := s.appRepo.WithTx(tx).GetByID(ctx, &dto.GetApplicationRequest{ID: req.ApplicationID, UserID: req.UserID}); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	writer := newEventWriter(tx, s.appRepo, s.eventRepo)
	event, err := writer.Append(ctx, &models.ApplicationEvent{
		ApplicationID: req.ApplicationID,
		UserID:        req.UserID,
		EventType:     eventType,
		Note:          req.Note,
	})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrFollowUpNotSet)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("AddEvent: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing transaction: %w", err)
	}

	return event, nil
}

// Timeline returns an owned application's events, most recent first.
func (s *eventService) Timeline(ctx context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error) {
	if _, err := s.appRepo.GetByID(ctx, &dto.GetApplicationRequest{ID: req.ApplicationID, UserID: req.UserID}); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	events, err := s.eventRepo.ListTimeline(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing timeline for application %s", req.ApplicationID))
	}
	return events, nil
}
