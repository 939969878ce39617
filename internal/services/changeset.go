package services

import (
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"
)

// applicationSnapshot holds the fields whose changes produce timeline events.
type applicationSnapshot struct {
	status         models.ApplicationStatus
	followUpAt     *time.Time
	recruiterEmail *string
	recruiterName  *string
}

func snapshotOf(app *models.Application) applicationSnapshot {
	return applicationSnapshot{
		status:         app.Status,
		followUpAt:     app.FollowUpAt,
		recruiterEmail: app.RecruiterEmail,
		recruiterName:  app.RecruiterName,
	}
}

// buildChanges turns a partial update into the changeset written in one batch.
// A supplied status goes through AdvanceStatus; a rejected move fails the whole update.
func buildChanges(current *models.Application, req *dto.UpdateApplicationRequest, now time.Time) (*models.ApplicationChanges, error) {
	changes := &models.ApplicationChanges{
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		RecruiterName:  req.RecruiterName,
		RecruiterEmail: req.RecruiterEmail,
		JobURL:         req.JobURL,
		SalaryRange:    req.SalaryRange,
		Location:       req.Location,
		FollowUpAt:     req.FollowUpAt,
	}

	// Postgres keeps microseconds; compare against what will actually be stored.
	if changes.FollowUpAt.Value != nil {
		changes.FollowUpAt = models.Some(changes.FollowUpAt.Value.Truncate(time.Microsecond))
	}

	if req.Status != nil {
		next, err := AdvanceStatus(current.Status, *req.Status)
		if err != nil {
			return nil, err
		}
		changes.Status = &next
		if next != current.Status {
			changes.StatusUpdatedAt = &now
		}
	}

	return changes, nil
}

// applyChanges projects changes onto a copy of app without touching storage.
func applyChanges(app models.Application, changes *models.ApplicationChanges) models.Application {
	if changes.CompanyName != nil {
		app.CompanyName = *changes.CompanyName
	}
	if changes.Position != nil {
		app.Position = *changes.Position
	}
	if changes.Status != nil {
		app.Status = *changes.Status
	}
	if changes.StatusUpdatedAt != nil {
		app.StatusUpdatedAt = changes.StatusUpdatedAt
	}
	if changes.RecruiterName.Set {
		app.RecruiterName = changes.RecruiterName.Value
	}
	if changes.RecruiterEmail.Set {
		app.RecruiterEmail = changes.RecruiterEmail.Value
	}
	if changes.JobURL.Set {
		app.JobURL = changes.JobURL.Value
	}
	if changes.SalaryRange.Set {
		app.SalaryRange = changes.SalaryRange.Value
	}
	if changes.Location.Set {
		app.Location = changes.Location.Value
	}
	if changes.FollowUpAt.Set {
		app.FollowUpAt = changes.FollowUpAt.Value
	}
	return app
}

// derivedEvents compares the final state with the pre-update snapshot and returns the
// events to append, in order: status_change, follow_up, contact. Recruiter name and
// email changes share a single contact event.
func derivedEvents(before applicationSnapshot, after *models.Application) []models.ApplicationEvent {
	var events []models.ApplicationEvent
	draft := func(eventType models.EventType) models.ApplicationEvent {
		return models.ApplicationEvent{
			ApplicationID: after.ID,
			UserID:        after.UserID,
			EventType:     eventType,
		}
	}

	if after.Status != before.status {
		e := draft(models.EventTypeStatusChange)
		e.FromStatus = ptr(before.status)
		e.ToStatus = ptr(after.Status)
		events = append(events, e)
	}

	if !sameTime(before.followUpAt, after.FollowUpAt) {
		e := draft(models.EventTypeFollowUp)
		// A cleared follow-up is still recorded, without a note.
		if after.FollowUpAt != nil {
			e.Note = ptr(defaultFollowUpNote)
		}
		events = append(events, e)
	}

	if !sameString(before.recruiterEmail, after.RecruiterEmail) || !sameString(before.recruiterName, after.RecruiterName) {
		events = append(events, draft(models.EventTypeContact))
	}

	return events
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
