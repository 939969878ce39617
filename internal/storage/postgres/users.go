package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, created_at, updated_at`

// Create inserts a user. Emails are stored lower-cased so lookups are case-insensitive.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), strings.ToLower(strings.TrimSpace(email)), passwordHash)

	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Printf("Error creating user: %v\n", err)
		return nil, mapWriteError(err, "create user")
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, req.ID)
}

// GetByEmail retrieves a user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, strings.ToLower(strings.TrimSpace(req.Email)))
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user: %v\n", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
