package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"
)

type applicationService struct {
	appRepo   storage.ApplicationRepository
	eventRepo storage.ApplicationEventRepository
	db        storage.TxBeginner
	now       func() time.Time
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(db storage.TxBeginner, appRepo storage.ApplicationRepository, eventRepo storage.ApplicationEventRepository) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		eventRepo: eventRepo,
		db:        db,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

func (s *applicationService) GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error) {
	apps, total, err := s.appRepo.List(ctx, req)
	if err != nil {
		return nil, 0, mapRepoError(err, "listing applications")
	}
	return apps, total, nil
}

// DueFollowUps lists applications with a follow-up at or before now + req.Days.
func (s *applicationService) DueFollowUps(ctx context.Context, req *dto.DueFollowUpsRequest) ([]models.Application, error) {
	deadline := s.now().AddDate(0, 0, req.Days)
	apps, err := s.appRepo.ListDueFollowUps(ctx, req.UserID, deadline)
	if err != nil {
		return nil, mapRepoError(err, "listing due follow-ups")
	}
	return apps, nil
}

// Update applies a partial update and appends the events it implies, atomically.
// The row is locked for the duration so concurrent updates of one application serialize.
func (s *applicationService) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UpdateApplication: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op after a successful commit

	txAppRepo := s.appRepo.WithTx(tx)
	// --- End Transaction Setup ---

	current, err := txAppRepo.GetForUpdate(ctx, &dto.GetApplicationRequest{ID: req.ID, UserID: req.UserID})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s for update", req.ID))
	}
	before := snapshotOf(current)

	changes, err := buildChanges(current, req, s.now())
	if err != nil {
		log.Printf("UpdateApplication: Rejected status move for application %s: %v", current.ID, err)
		return nil, err
	}
	if changes.IsEmpty() {
		return current, nil
	}

	updated, err := txAppRepo.Update(ctx, current.ID, changes)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating application %s", current.ID))
	}

	after := applyChanges(*current, changes)
	writer := newEventWriter(tx, s.appRepo, s.eventRepo)
	for _, event := range derivedEvents(before, &after) {
		if _, err := writer.record(ctx, &event); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("UpdateApplication: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing transaction: %w", err)
	}

	return updated, nil
}

// Delete removes an owned application; its events are removed with it.
func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	if err := s.appRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting application %s", req.ID))
	}
	return nil
}
