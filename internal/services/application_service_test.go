package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s models.ApplicationStatus) *models.ApplicationStatus { return &s }

func TestApplicationService_Update_SkipRejectedThenStepAccepted(t *testing.T) {
	svc, events, store, db := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)

	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Status: statusPtr(models.ApplicationStatusOffer)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, db.lastTx().committed)
	assert.True(t, db.lastTx().rolledBack)
	assert.Empty(t, store.eventsFor(app.ID))

	stored, err := svc.GetByID(ctx, &dto.GetApplicationRequest{ID: app.ID, UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, stored.Status)
	assert.Nil(t, stored.StatusUpdatedAt)

	updated, err := svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Status: statusPtr(models.ApplicationStatusScreening)})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusScreening, updated.Status)
	require.NotNil(t, updated.StatusUpdatedAt)
	assert.True(t, updated.StatusUpdatedAt.Equal(svc.now()))
	assert.True(t, db.lastTx().committed)

	timeline, err := events.Timeline(ctx, &dto.GetTimelineRequest{ApplicationID: app.ID, UserID: userID})
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Equal(t, models.EventTypeStatusChange, timeline[0].EventType)
	assert.Equal(t, models.ApplicationStatusApplied, *timeline[0].FromStatus)
	assert.Equal(t, models.ApplicationStatusScreening, *timeline[0].ToStatus)
}

func TestApplicationService_Update_SameStatusIsNoopTransition(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Status: statusPtr(models.ApplicationStatusApplied)})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, updated.Status)
	assert.Nil(t, updated.StatusUpdatedAt)
	assert.Empty(t, store.eventsFor(app.ID))
}

func TestApplicationService_Update_NonStatusFieldsLeaveStatusAlone(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:          app.ID,
		UserID:      userID,
		Location:    models.Some("Remote"),
		SalaryRange: models.Some("100k-120k"),
		JobURL:      models.Some("https://acme.example/jobs/1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Remote", *updated.Location)
	assert.Nil(t, updated.StatusUpdatedAt)

	assert.Empty(t, store.eventsFor(app.ID))
}

func TestApplicationService_Update_RecruiterChangesEmitOneContactEvent(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:             app.ID,
		UserID:         userID,
		RecruiterName:  models.Some("Alex"),
		RecruiterEmail: models.Some("alex@acme.example"),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.EventType{models.EventTypeContact}, eventTypes(store.eventsFor(app.ID)))

	// Resubmitting identical values changes nothing.
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:             app.ID,
		UserID:         userID,
		RecruiterName:  models.Some("Alex"),
		RecruiterEmail: models.Some("alex@acme.example"),
	})
	require.NoError(t, err)
	assert.Len(t, store.eventsFor(app.ID), 1)
}

func TestApplicationService_Update_EventOrder(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	followUp := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:             app.ID,
		UserID:         userID,
		Status:         statusPtr(models.ApplicationStatusScreening),
		FollowUpAt:     models.Some(followUp),
		RecruiterEmail: models.Some("alex@acme.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, []models.EventType{
		models.EventTypeStatusChange,
		models.EventTypeFollowUp,
		models.EventTypeContact,
	}, eventTypes(store.eventsFor(app.ID)))
}

func TestApplicationService_Update_FollowUpSetAndCleared(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:         app.ID,
		UserID:     userID,
		FollowUpAt: models.Some(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.FollowUpAt)

	updated, err = svc.Update(ctx, &dto.UpdateApplicationRequest{
		ID:         app.ID,
		UserID:     userID,
		FollowUpAt: models.Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.FollowUpAt)

	events := store.eventsFor(app.ID)
	assert.Equal(t, []models.EventType{models.EventTypeFollowUp, models.EventTypeFollowUp}, eventTypes(events))
	require.NotNil(t, events[0].Note, "scheduling a follow-up carries the default note")
	assert.Equal(t, "Follow-up scheduled", *events[0].Note)
	assert.Nil(t, events[1].Note, "clearing a follow-up records no note")
}

func TestApplicationService_Update_OmittedFieldsUntouched(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	name := "Alex"
	app, err := svc.Create(ctx, &dto.CreateApplicationRequest{
		UserID:        userID,
		CompanyName:   "Acme",
		Position:      "SRE",
		RecruiterName: &name,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Location: models.Some("Berlin")})
	require.NoError(t, err)
	require.NotNil(t, updated.RecruiterName)
	assert.Equal(t, "Alex", *updated.RecruiterName)

	updated, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, RecruiterName: models.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.RecruiterName)
	assert.Equal(t, "Berlin", *updated.Location)
}

func TestApplicationService_Update_ForeignApplicationIsNotFound(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	app, err := createApp(svc, uuid.New(), "Acme", "SRE")
	require.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: uuid.New(), Location: models.Some("Remote")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(ctx, &dto.GetApplicationRequest{ID: app.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationService_DuplicateCompanyPositionConflicts(t *testing.T) {
	svc, _, _, db := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	_, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	_, err = createApp(svc, userID, "Acme", "SRE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	var conflict *storage.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []string{"company_name", "position"}, conflict.Fields)

	// Another user may track the same posting.
	_, err = createApp(svc, uuid.New(), "Acme", "SRE")
	require.NoError(t, err)

	// Renaming into an existing pair conflicts too and rolls back.
	other, err := createApp(svc, userID, "Acme", "Platform Engineer")
	require.NoError(t, err)
	position := "SRE"
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: other.ID, UserID: userID, Position: &position})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []string{"company_name", "position"}, conflict.Fields)
	assert.False(t, db.lastTx().committed)
}

func TestApplicationService_Update_EventFailureAbortsCommit(t *testing.T) {
	svc, _, store, db := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	store.eventErr = errBoom
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Status: statusPtr(models.ApplicationStatusScreening)})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, db.lastTx().committed)
	assert.True(t, db.lastTx().rolledBack)
}

func TestApplicationService_Update_BeginFailure(t *testing.T) {
	svc, _, _, db := newTestServices()
	db.beginErr = errBoom

	_, err := svc.Update(context.Background(), &dto.UpdateApplicationRequest{ID: uuid.New(), UserID: uuid.New()})
	assert.ErrorIs(t, err, errBoom)
}

func TestApplicationService_Update_EmptyChangesReturnsCurrent(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)

	store.updateErr = errBoom // Must not be reached
	got, err := svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)
}

func TestApplicationService_DueFollowUps(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()
	now := svc.now()

	soon := now.Add(48 * time.Hour)
	later := now.Add(10 * 24 * time.Hour)
	overdue := now.Add(-24 * time.Hour)
	for company, at := range map[string]time.Time{"Soon": soon, "Later": later, "Overdue": overdue} {
		_, err := svc.Create(ctx, &dto.CreateApplicationRequest{UserID: userID, CompanyName: company, Position: "SRE", FollowUpAt: &at})
		require.NoError(t, err)
	}
	_, err := createApp(svc, userID, "None", "SRE")
	require.NoError(t, err)

	due, err := svc.DueFollowUps(ctx, &dto.DueFollowUpsRequest{UserID: userID, Days: 3})
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "Overdue", due[0].CompanyName)
	assert.Equal(t, "Soon", due[1].CompanyName)
}

func TestApplicationService_Delete(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()
	userID := uuid.New()

	app, err := createApp(svc, userID, "Acme", "SRE")
	require.NoError(t, err)
	_, err = svc.Update(ctx, &dto.UpdateApplicationRequest{ID: app.ID, UserID: userID, Status: statusPtr(models.ApplicationStatusRejected)})
	require.NoError(t, err)
	require.Len(t, store.eventsFor(app.ID), 1)

	err = svc.Delete(ctx, &dto.DeleteApplicationRequest{ID: app.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, &dto.DeleteApplicationRequest{ID: app.ID, UserID: userID}))
	assert.Empty(t, store.eventsFor(app.ID))

	_, err = svc.GetByID(ctx, &dto.GetApplicationRequest{ID: app.ID, UserID: userID})
	assert.ErrorIs(t, err, ErrNotFound)
}
