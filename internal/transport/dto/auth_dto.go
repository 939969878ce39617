package dto

import "github.com/google/uuid"

// RegisterRequest defines the structure for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"` // bcrypt ignores bytes past 72
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// TokenResponse is returned after a successful register or login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
