package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsRepo implements the storage.AnalyticsRepository interface with aggregate queries.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepo creates a new AnalyticsRepo.
func NewAnalyticsRepo(db *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

var _ storage.AnalyticsRepository = (*AnalyticsRepo)(nil)

// normalizedEmail is the recruiter bucket key: trimmed and lower-cased.
func normalizedEmail(t *entsql.SelectTable) string {
	return fmt.Sprintf("LOWER(TRIM(%s))", t.C("recruiter_email"))
}

// recruiterFilter keeps the user's applications that carry a non-blank recruiter email.
func recruiterFilter(t *entsql.SelectTable, userID uuid.UUID) *entsql.Predicate {
	return entsql.And(
		entsql.EQ(t.C("user_id"), userID),
		entsql.NotNull(t.C("recruiter_email")),
		entsql.ExprP(fmt.Sprintf("LENGTH(TRIM(%s)) > 0", t.C("recruiter_email"))),
	)
}

// CountByStatus returns the number of applications per current status.
func (r *AnalyticsRepo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[models.ApplicationStatus]int, error) {
	b := builder()
	t := b.Table(applicationsTable)
	query, args := b.Select(t.C("status"), entsql.Count(t.C("id"))).
		From(t).
		Where(entsql.EQ(t.C("user_id"), userID)).
		GroupBy(t.C("status")).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error counting applications by status for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}

	counts := make(map[models.ApplicationStatus]int)
	var status models.ApplicationStatus
	var count int
	_, err = pgx.ForEachRow(rows, []any{&status, &count}, func() error {
		counts[status] = count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan status counts: %w", err)
	}
	return counts, nil
}

// AvgDaysToStatus averages days between creation and the last status change, per current status.
func (r *AnalyticsRepo) AvgDaysToStatus(ctx context.Context, userID uuid.UUID) (map[models.ApplicationStatus]float64, error) {
	b := builder()
	t := b.Table(applicationsTable)
	avgDays := fmt.Sprintf("AVG(EXTRACT(EPOCH FROM (%s - %s)) / 86400.0)::float8",
		t.C("status_updated_at"), t.C("created_at"))

	query, args := b.Select(t.C("status"), avgDays).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("user_id"), userID),
			entsql.NotNull(t.C("status_updated_at")),
		)).
		GroupBy(t.C("status")).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error averaging time to status for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to average time to status: %w", err)
	}

	averages := make(map[models.ApplicationStatus]float64)
	var status models.ApplicationStatus
	var avg *float64
	_, err = pgx.ForEachRow(rows, []any{&status, &avg}, func() error {
		if avg != nil {
			averages[status] = *avg
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan time to status: %w", err)
	}
	return averages, nil
}

// ListStatusChanges returns the user's status_change events grouped by application,
// each group in (created_at, id) order.
func (r *AnalyticsRepo) ListStatusChanges(ctx context.Context, userID uuid.UUID) ([]storage.StatusChange, error) {
	b := builder()
	t := b.Table(applicationEventsTable)
	query, args := b.Select(t.C("application_id"), t.C("to_status"), t.C("created_at")).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("user_id"), userID),
			entsql.EQ(t.C("event_type"), string(models.EventTypeStatusChange)),
			entsql.NotNull(t.C("to_status")),
		)).
		OrderBy(entsql.Asc(t.C("application_id")), entsql.Asc(t.C("created_at")), entsql.Asc(t.C("id"))).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing status changes for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}

	changes := []storage.StatusChange{}
	var change storage.StatusChange
	_, err = pgx.ForEachRow(rows, []any{&change.ApplicationID, &change.ToStatus, &change.CreatedAt}, func() error {
		changes = append(changes, change)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan status changes: %w", err)
	}
	return changes, nil
}

// CountByRecruiter totals applications per normalized recruiter email, busiest first.
// LastContactedAt is the newest contact event across the recruiter's applications.
func (r *AnalyticsRepo) CountByRecruiter(ctx context.Context, userID uuid.UUID) ([]storage.RecruiterTotal, error) {
	b := builder()
	a := b.Table(applicationsTable)
	// The join needs the alias before any column of e is rendered.
	e := b.Table(applicationEventsTable).As("e")
	recruiter := normalizedEmail(a)
	total := fmt.Sprintf("COUNT(DISTINCT %s)", a.C("id"))

	query, args := b.Select(recruiter, total, entsql.Max(e.C("created_at"))).
		From(a).
		LeftJoin(e).
		OnP(entsql.And(
			entsql.ColumnsEQ(e.C("application_id"), a.C("id")),
			entsql.EQ(e.C("event_type"), string(models.EventTypeContact)),
		)).
		Where(recruiterFilter(a, userID)).
		GroupBy(recruiter).
		OrderBy(entsql.Desc(total), entsql.Asc(recruiter)).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error counting applications by recruiter for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to count applications by recruiter: %w", err)
	}

	totals := []storage.RecruiterTotal{}
	var email string
	var count int
	var lastContacted *time.Time
	_, err = pgx.ForEachRow(rows, []any{&email, &count, &lastContacted}, func() error {
		totals = append(totals, storage.RecruiterTotal{
			RecruiterEmail:  email,
			Total:           count,
			LastContactedAt: lastContacted,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recruiter totals: %w", err)
	}
	return totals, nil
}

// CountByRecruiterAndStatus breaks recruiter totals down by current status.
func (r *AnalyticsRepo) CountByRecruiterAndStatus(ctx context.Context, userID uuid.UUID) ([]storage.RecruiterStatusCount, error) {
	b := builder()
	t := b.Table(applicationsTable)
	recruiter := normalizedEmail(t)

	query, args := b.Select(recruiter, t.C("status"), entsql.Count(t.C("id"))).
		From(t).
		Where(recruiterFilter(t, userID)).
		GroupBy(recruiter, t.C("status")).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error counting recruiter statuses for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to count recruiter statuses: %w", err)
	}

	counts := []storage.RecruiterStatusCount{}
	var row storage.RecruiterStatusCount
	_, err = pgx.ForEachRow(rows, []any{&row.RecruiterEmail, &row.Status, &row.Count}, func() error {
		counts = append(counts, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recruiter statuses: %w", err)
	}
	return counts, nil
}
