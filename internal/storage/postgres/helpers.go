package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-tracker-api/internal/storage"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	applicationsTable      = "applications"
	applicationEventsTable = "application_events"

	applicationUniqueConstraint = "uq_user_company_position"
	userEmailUniqueConstraint   = "users_email_key"

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var applicationConflictFields = []string{"company_name", "position"}

// builder returns an ent SQL builder emitting Postgres placeholders ($1, $2, ...).
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.Postgres)
}

// mapWriteError translates Postgres constraint violations into storage errors.
func mapWriteError(err error, operation string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s: %w", operation, err)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case applicationUniqueConstraint:
			log.Printf("Error during %s (unique constraint %s): %v\n", operation, pgErr.ConstraintName, err)
			return &storage.ConflictError{Constraint: pgErr.ConstraintName, Fields: applicationConflictFields}
		case userEmailUniqueConstraint:
			return fmt.Errorf("failed to %s: %w", operation, storage.ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to %s: unique constraint %s: %w", operation, pgErr.ConstraintName, storage.ErrConflict)
	case pgForeignKeyViolation:
		log.Printf("Error during %s (foreign key violation): %v\n", operation, err)
		return fmt.Errorf("failed to %s: invalid reference: %w", operation, storage.ErrConflict)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
