package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo          storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates an account and signs a token for it.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, "", fmt.Errorf("internal error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Email, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, "", fmt.Errorf("internal error creating user: %w", err)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// signToken issues an HS256 JWT whose subject is the user ID.
func (s *userService) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return tokenString, nil
}
