package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTx records how a transaction ended. Methods other than Commit and Rollback are
// never called by the services and would panic on the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	txs      []*fakeTx
	beginErr error
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	tx := &fakeTx{}
	db.txs = append(db.txs, tx)
	return tx, nil
}

func (db *fakeDB) lastTx() *fakeTx {
	if len(db.txs) == 0 {
		return nil
	}
	return db.txs[len(db.txs)-1]
}

// memStore is an in-memory stand-in for the applications and application_events tables.
type memStore struct {
	mu        sync.Mutex
	apps      map[uuid.UUID]models.Application
	events    []models.ApplicationEvent
	clock     time.Time
	eventErr  error
	updateErr error
}

func newMemStore() *memStore {
	return &memStore{
		apps:  make(map[uuid.UUID]models.Application),
		clock: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) conflicts(app models.Application) bool {
	for id, other := range m.apps {
		if id != app.ID && other.UserID == app.UserID &&
			other.CompanyName == app.CompanyName && other.Position == app.Position {
			return true
		}
	}
	return false
}

func conflictError() error {
	return &storage.ConflictError{Constraint: "uq_user_company_position", Fields: []string{"company_name", "position"}}
}

func (m *memStore) eventsFor(appID uuid.UUID) []models.ApplicationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ApplicationEvent
	for _, e := range m.events {
		if e.ApplicationID == appID {
			out = append(out, e)
		}
	}
	return out
}

type memAppRepo struct{ *memStore }

var _ storage.ApplicationRepository = memAppRepo{}

func (r memAppRepo) Create(_ context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := models.ApplicationStatusApplied
	if req.Status != nil {
		status = *req.Status
	}
	now := r.tick()
	app := models.Application{
		ID:             uuid.New(),
		UserID:         req.UserID,
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		Status:         status,
		RecruiterName:  req.RecruiterName,
		RecruiterEmail: req.RecruiterEmail,
		JobURL:         req.JobURL,
		SalaryRange:    req.SalaryRange,
		Location:       req.Location,
		FollowUpAt:     req.FollowUpAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if r.conflicts(app) {
		return nil, conflictError()
	}
	r.apps[app.ID] = app
	return &app, nil
}

func (r memAppRepo) GetByID(_ context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[req.ID]
	if !ok || app.UserID != req.UserID {
		return nil, storage.ErrNotFound
	}
	return &app, nil
}

func (r memAppRepo) GetForUpdate(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	return r.GetByID(ctx, req)
}

func (r memAppRepo) List(_ context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.apps {
		if app.UserID == req.UserID {
			out = append(out, app)
		}
	}
	return out, len(out), nil
}

func (r memAppRepo) ListDueFollowUps(_ context.Context, userID uuid.UUID, deadline time.Time) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Application{}
	for _, app := range r.apps {
		if app.UserID == userID && app.FollowUpAt != nil && !app.FollowUpAt.After(deadline) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FollowUpAt.Before(*out[j].FollowUpAt) })
	return out, nil
}

func (r memAppRepo) Update(_ context.Context, id uuid.UUID, changes *models.ApplicationChanges) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	app, ok := r.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	updated := applyChanges(app, changes)
	updated.UpdatedAt = r.tick()
	if r.conflicts(updated) {
		return nil, conflictError()
	}
	r.apps[id] = updated
	return &updated, nil
}

func (r memAppRepo) Delete(_ context.Context, req *dto.DeleteApplicationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[req.ID]
	if !ok || app.UserID != req.UserID {
		return storage.ErrNotFound
	}
	delete(r.apps, req.ID)
	kept := r.events[:0]
	for _, e := range r.events {
		if e.ApplicationID != req.ID {
			kept = append(kept, e)
		}
	}
	r.events = kept
	return nil
}

func (r memAppRepo) WithTx(pgx.Tx) storage.ApplicationRepository { return r }

type memEventRepo struct{ *memStore }

var _ storage.ApplicationEventRepository = memEventRepo{}

func (r memEventRepo) Create(_ context.Context, event *models.ApplicationEvent) (*models.ApplicationEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.eventErr != nil {
		return nil, r.eventErr
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	created := *event
	created.ID = id
	created.CreatedAt = r.tick()
	r.events = append(r.events, created)
	return &created, nil
}

func (r memEventRepo) ListTimeline(_ context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.ApplicationEvent{}
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.ApplicationID == req.ApplicationID && e.UserID == req.UserID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memEventRepo) WithTx(pgx.Tx) storage.ApplicationEventRepository { return r }

// newTestServices wires the application and event services over one memStore.
func newTestServices() (*applicationService, EventService, *memStore, *fakeDB) {
	store := newMemStore()
	db := &fakeDB{}
	apps := memAppRepo{store}
	events := memEventRepo{store}
	appSvc := NewApplicationService(db, apps, events).(*applicationService)
	appSvc.now = func() time.Time { return time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC) }
	return appSvc, NewEventService(db, apps, events), store, db
}

func createApp(svc ApplicationService, userID uuid.UUID, company, position string) (*models.Application, error) {
	return svc.Create(context.Background(), &dto.CreateApplicationRequest{
		UserID:      userID,
		CompanyName: company,
		Position:    position,
	})
}

func eventTypes(events []models.ApplicationEvent) []models.EventType {
	out := make([]models.EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.EventType)
	}
	return out
}

var errBoom = errors.New("boom")
