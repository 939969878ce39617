package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signedToken(t *testing.T, subject, secret string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func signedHS512(t *testing.T, subject string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{Subject: subject, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func unexpiringToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: subject}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		userID, err := GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Valid token",
			header:         "Bearer " + signedToken(t, userID.String(), testSecret, time.Hour),
			expectedStatus: http.StatusOK,
			expectedBody:   userID.String(),
		},
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authorization header required",
		},
		{
			name:           "Wrong scheme",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid Authorization header format",
		},
		{
			name:           "Expired token",
			header:         "Bearer " + signedToken(t, userID.String(), testSecret, -time.Minute),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token has expired",
		},
		{
			name:           "Wrong secret",
			header:         "Bearer " + signedToken(t, userID.String(), "other-secret", time.Hour),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid token",
		},
		{
			name:           "Token signed with another algorithm",
			header:         "Bearer " + signedHS512(t, userID.String()),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid token",
		},
		{
			name:           "Token without expiry",
			header:         "Bearer " + unexpiringToken(t, userID.String()),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid token",
		},
		{
			name:           "Subject is not a UUID",
			header:         "Bearer " + signedToken(t, "not-a-uuid", testSecret, time.Hour),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid user identifier in token",
		},
	}

	router := setupAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set(userCtx, "not-a-uuid")
	_, err = GetUserIDFromContext(c)
	assert.Error(t, err)
}
