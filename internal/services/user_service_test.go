package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	mock_storage "job-tracker-api/internal/mocks"
	"job-tracker-api/internal/models"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

var (
	testUserID = uuid.New() // Use a consistent ID for predictable mocks/results
)

// hashOf matches a bcrypt hash of password.
type hashOf string

func (h hashOf) Matches(x interface{}) bool {
	hash, ok := x.(string)
	return ok && bcrypt.CompareHashAndPassword([]byte(hash), []byte(h)) == nil
}

func (h hashOf) String() string { return fmt.Sprintf("is a bcrypt hash of %q", string(h)) }

func subjectOf(t *testing.T, token string) string {
	t.Helper()
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	require.NoError(t, err)
	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	return subject
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	userService := services.NewUserService(mockUserRepo, jwtSecret, jwtDuration)

	repoErrDbConnectionLost := errors.New("database connection lost")

	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest)
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			req:  &dto.RegisterRequest{Email: "test@example.com", Password: "password123"},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req.Email, hashOf(req.Password)).
					Return(&models.User{ID: testUserID, Email: req.Email}, nil).Times(1)
			},
		},
		{
			name: "Conflict - Duplicate Email",
			req:  &dto.RegisterRequest{Email: "test@example.com", Password: "password123"},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req.Email, gomock.Any()).Return(nil, storage.ErrDuplicateEmail).Times(1)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Repository Error",
			req:  &dto.RegisterRequest{Email: "error@example.com", Password: "password123"},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req.Email, gomock.Any()).Return(nil, repoErrDbConnectionLost).Times(1)
			},
			expectedError: repoErrDbConnectionLost, // Check for wrapped error
			errorContains: "internal error creating user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(mockUserRepo, tt.req)

			user, token, err := userService.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testUserID, user.ID)
				assert.Equal(t, testUserID.String(), subjectOf(t, token))
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	userService := services.NewUserService(mockUserRepo, jwtSecret, jwtDuration)

	correctPassword := "password123"
	correctHashedPassword, err := bcrypt.GenerateFromPassword([]byte(correctPassword), bcrypt.MinCost)
	require.NoError(t, err)
	repoErrDbConnection := errors.New("db connection error")

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest)
		expectToken   bool
		expectedError error
	}{
		{
			name: "Success",
			req:  &dto.LoginRequest{Email: "test@example.com", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).
					Return(&models.User{ID: testUserID, Email: req.Email, PasswordHash: string(correctHashedPassword)}, nil).Times(1)
			},
			expectToken: true,
		},
		{
			name: "Invalid Password",
			req:  &dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).
					Return(&models.User{ID: testUserID, Email: req.Email, PasswordHash: string(correctHashedPassword)}, nil).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "User Not Found",
			req:  &dto.LoginRequest{Email: "notfound@example.com", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: req.Email}).
					Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Repository Error",
			req:  &dto.LoginRequest{Email: "test@example.com", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repoErrDbConnection).Times(1)
			},
			expectedError: repoErrDbConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(mockUserRepo, tt.req)

			user, token, err := userService.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testUserID, user.ID)
			}
			if tt.expectToken {
				assert.Equal(t, testUserID.String(), subjectOf(t, token))
			} else {
				assert.Empty(t, token)
			}
		})
	}
}
