package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// migration is one schema version, applied in a single transaction.
type migration struct {
	version    int
	name       string
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create users, applications and application_events",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY,
				email VARCHAR(255) NOT NULL,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT users_email_key UNIQUE (email)
			)`,
			`CREATE TABLE IF NOT EXISTS applications (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				company_name VARCHAR(255) NOT NULL,
				position VARCHAR(255) NOT NULL,
				status TEXT NOT NULL DEFAULT 'applied'
					CHECK (status IN ('applied', 'screening', 'interview', 'offer', 'accepted', 'rejected')),
				recruiter_name VARCHAR(255),
				recruiter_email VARCHAR(255),
				job_url VARCHAR(500),
				salary_range VARCHAR(255),
				location VARCHAR(255),
				follow_up_at TIMESTAMPTZ,
				status_updated_at TIMESTAMPTZ,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT uq_user_company_position UNIQUE (user_id, company_name, position)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_company_name ON applications(company_name)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_recruiter_email ON applications(recruiter_email)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_follow_up_at ON applications(follow_up_at)`,
			`CREATE TABLE IF NOT EXISTS application_events (
				id UUID PRIMARY KEY,
				application_id UUID NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				event_type TEXT NOT NULL
					CHECK (event_type IN ('status_change', 'follow_up', 'note', 'contact')),
				from_status TEXT,
				to_status TEXT,
				note TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_application_events_application_id ON application_events(application_id)`,
			`CREATE INDEX IF NOT EXISTS idx_application_events_user_id ON application_events(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_application_events_event_type ON application_events(event_type)`,
			`CREATE INDEX IF NOT EXISTS idx_application_events_created_at ON application_events(created_at)`,
		},
	},
}

// SchemaVersion is the newest schema version known to this build.
var SchemaVersion = migrations[len(migrations)-1].version

// Migrate brings the schema up to SchemaVersion. It is safe to call on every start-up.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
		log.Printf("Migrate: applied version %d (%s)", m.version, m.name)
	}

	return nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: begin version %d: %w", m.version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range m.statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: version %d statement %d: %w", m.version, i+1, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
		return fmt.Errorf("migrate: record version %d: %w", m.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit version %d: %w", m.version, err)
	}
	return nil
}
