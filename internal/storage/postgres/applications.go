package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

var applicationColumnList = []string{
	"id", "user_id", "company_name", "position", "status",
	"recruiter_name", "recruiter_email", "job_url", "salary_range", "location",
	"follow_up_at", "status_updated_at", "created_at", "updated_at",
}

var applicationColumns = strings.Join(applicationColumnList, ", ")

// sortableColumns are the fields a list request may order by.
var sortableColumns = map[string]bool{
	"created_at":        true,
	"company_name":      true,
	"position":          true,
	"status":            true,
	"follow_up_at":      true,
	"status_updated_at": true,
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.CompanyName,
		&app.Position,
		&app.Status,
		&app.RecruiterName,
		&app.RecruiterEmail,
		&app.JobURL,
		&app.SalaryRange,
		&app.Location,
		&app.FollowUpAt,
		&app.StatusUpdatedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create saves a new application for the requesting user.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	status := models.ApplicationStatusApplied
	if req.Status != nil {
		status = *req.Status
	}

	query := `
		INSERT INTO applications (id, user_id, company_name, position, status,
			recruiter_name, recruiter_email, job_url, salary_range, location, follow_up_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.CompanyName,
		req.Position,
		status,
		req.RecruiterName,
		req.RecruiterEmail,
		req.JobURL,
		req.SalaryRange,
		req.Location,
		req.FollowUpAt,
	)

	app, err := scanApplication(row)
	if err != nil {
		return nil, mapWriteError(err, "create application")
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves an application owned by the requesting user.
func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, query, req)
}

// GetForUpdate is GetByID with a row lock, serializing concurrent updates of one application.
func (r *ApplicationRepo) GetForUpdate(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, req)
}

func (r *ApplicationRepo) getOne(ctx context.Context, query string, req *dto.GetApplicationRequest) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, query, req.ID, req.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s for user %s\n", req.ID, req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}
	return app, nil
}

// applicationFilter builds the WHERE clause shared by the page and count queries.
func applicationFilter(t *entsql.SelectTable, req *dto.ListApplicationsRequest) *entsql.Predicate {
	preds := []*entsql.Predicate{entsql.EQ(t.C("user_id"), req.UserID)}
	if req.Status != nil {
		preds = append(preds, entsql.EQ(t.C("status"), string(*req.Status)))
	}
	if company := strings.TrimSpace(req.Company); company != "" {
		preds = append(preds, entsql.ContainsFold(t.C("company_name"), company))
	}
	if q := strings.TrimSpace(req.Q); q != "" {
		preds = append(preds, entsql.Or(
			entsql.ContainsFold(t.C("company_name"), q),
			entsql.ContainsFold(t.C("position"), q),
			entsql.ContainsFold(t.C("recruiter_email"), q),
		))
	}
	return entsql.And(preds...)
}

// orderFor parses "[-]field"; unknown fields fall back to newest first.
func orderFor(t *entsql.SelectTable, sort string) string {
	descending := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")
	if !sortableColumns[field] {
		return entsql.Desc(t.C("created_at"))
	}
	if descending {
		return entsql.Desc(t.C(field))
	}
	return entsql.Asc(t.C(field))
}

// List returns one page of the user's applications and the total matching count.
func (r *ApplicationRepo) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error) {
	b := builder()

	countTable := b.Table(applicationsTable)
	countQuery, countArgs := b.Select(entsql.Count("*")).
		From(countTable).
		Where(applicationFilter(countTable, req)).
		Query()

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Printf("Error counting applications for user %s: %v\n", req.UserID, err)
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	t := b.Table(applicationsTable)
	query, args := b.Select(t.Columns(applicationColumnList...)...).
		From(t).
		Where(applicationFilter(t, req)).
		OrderBy(orderFor(t, req.Sort), entsql.Asc(t.C("id"))).
		Limit(req.PageSize).
		Offset((req.Page - 1) * req.PageSize).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications for user %s: %v\n", req.UserID, err)
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications for user %s: %v\n", req.UserID, err)
		return nil, 0, fmt.Errorf("failed to scan applications: %w", err)
	}

	if apps == nil {
		apps = []models.Application{} // Return empty slice, not nil
	}

	return apps, total, nil
}

// ListDueFollowUps returns applications with a follow-up at or before deadline, soonest first.
func (r *ApplicationRepo) ListDueFollowUps(ctx context.Context, userID uuid.UUID, deadline time.Time) ([]models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1 AND follow_up_at IS NOT NULL AND follow_up_at <= $2
		ORDER BY follow_up_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID, deadline)
	if err != nil {
		log.Printf("Error querying due follow-ups for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to query due follow-ups: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning due follow-ups for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to scan due follow-ups: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// Update writes every set field of changes in one statement.
func (r *ApplicationRepo) Update(ctx context.Context, id uuid.UUID, changes *models.ApplicationChanges) (*models.Application, error) {
	var setClauses []string
	args := []interface{}{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	// Build SET clauses dynamically
	if changes.CompanyName != nil {
		set("company_name", *changes.CompanyName)
	}
	if changes.Position != nil {
		set("position", *changes.Position)
	}
	if changes.Status != nil {
		set("status", *changes.Status)
	}
	if changes.StatusUpdatedAt != nil {
		set("status_updated_at", *changes.StatusUpdatedAt)
	}
	if changes.RecruiterName.Set {
		set("recruiter_name", changes.RecruiterName.Value)
	}
	if changes.RecruiterEmail.Set {
		set("recruiter_email", changes.RecruiterEmail.Value)
	}
	if changes.JobURL.Set {
		set("job_url", changes.JobURL.Value)
	}
	if changes.SalaryRange.Set {
		set("salary_range", changes.SalaryRange.Value)
	}
	if changes.Location.Set {
		set("location", changes.Location.Value)
	}
	if changes.FollowUpAt.Set {
		set("follow_up_at", changes.FollowUpAt.Value)
	}

	// Add updated_at and WHERE clause
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE applications
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application %s: %v\n", id, err)
		return nil, mapWriteError(err, fmt.Sprintf("update application %s", id))
	}

	log.Printf("Application updated successfully: %s", app.ID)
	return app, nil
}

// Delete removes an application; its events go with it through ON DELETE CASCADE.
func (r *ApplicationRepo) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	query := `DELETE FROM applications WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, req.ID, req.UserID)
	if err != nil {
		log.Printf("Error deleting application %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete application %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Application not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Application deleted successfully: %s", req.ID)
	return nil
}
