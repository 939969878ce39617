package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-tracker-api/internal/api/handlers"
	"job-tracker-api/internal/api/middleware"
	"job-tracker-api/internal/models"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

var _ services.UserService = (*MockUserService)(nil)

type MockApplicationService struct{ mock.Mock }

func (m *MockApplicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.Application, int, error) {
	args := m.Called(ctx, req)
	apps, _ := args.Get(0).([]models.Application)
	return apps, args.Int(1), args.Error(2)
}

func (m *MockApplicationService) DueFollowUps(ctx context.Context, req *dto.DueFollowUpsRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	apps, _ := args.Get(0).([]models.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationService) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *MockApplicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	return m.Called(ctx, req).Error(0)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

type MockEventService struct{ mock.Mock }

func (m *MockEventService) AddEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.ApplicationEvent, error) {
	args := m.Called(ctx, req)
	event, _ := args.Get(0).(*models.ApplicationEvent)
	return event, args.Error(1)
}

func (m *MockEventService) Timeline(ctx context.Context, req *dto.GetTimelineRequest) ([]models.ApplicationEvent, error) {
	args := m.Called(ctx, req)
	events, _ := args.Get(0).([]models.ApplicationEvent)
	return events, args.Error(1)
}

var _ services.EventService = (*MockEventService)(nil)

type MockAnalyticsService struct{ mock.Mock }

func (m *MockAnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.SummaryResponse)
	return resp, args.Error(1)
}

func (m *MockAnalyticsService) TimeToStatus(ctx context.Context, userID uuid.UUID) (*dto.TimeToStatusResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.TimeToStatusResponse)
	return resp, args.Error(1)
}

func (m *MockAnalyticsService) StatusDuration(ctx context.Context, userID uuid.UUID) (*dto.StatusDurationResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.StatusDurationResponse)
	return resp, args.Error(1)
}

func (m *MockAnalyticsService) Funnel(ctx context.Context, userID uuid.UUID) (*dto.FunnelResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.FunnelResponse)
	return resp, args.Error(1)
}

func (m *MockAnalyticsService) RecruiterPerformance(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.RecruiterPerformanceResponse)
	return resp, args.Error(1)
}

func (m *MockAnalyticsService) RecruiterPerformanceV2(ctx context.Context, userID uuid.UUID) (*dto.RecruiterPerformanceV2Response, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.RecruiterPerformanceV2Response)
	return resp, args.Error(1)
}

var _ services.AnalyticsService = (*MockAnalyticsService)(nil)

func generateTestToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// testEnv wires every handler onto a router guarded by the real JWT middleware.
type testEnv struct {
	router    *gin.Engine
	users     *MockUserService
	apps      *MockApplicationService
	events    *MockEventService
	analytics *MockAnalyticsService
	userID    uuid.UUID
	token     string
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		router:    gin.New(),
		users:     new(MockUserService),
		apps:      new(MockApplicationService),
		events:    new(MockEventService),
		analytics: new(MockAnalyticsService),
		userID:    uuid.New(),
	}
	env.token = generateTestToken(t, env.userID)

	validate := handlers.NewValidator()
	authHandler := handlers.NewAuthHandler(env.users, validate)
	appHandler := handlers.NewApplicationHandler(env.apps, env.events, validate, 3)
	analyticsHandler := handlers.NewAnalyticsHandler(env.analytics)

	env.router.POST("/auth/register", authHandler.Register)
	env.router.POST("/auth/login", authHandler.Login)

	apps := env.router.Group("/applications", middleware.JWTAuthMiddleware(testSecret))
	apps.POST("", appHandler.CreateApplication)
	apps.GET("", appHandler.ListApplications)
	apps.GET("/followups", appHandler.ListDueFollowUps)
	apps.GET("/analytics/summary", analyticsHandler.Summary)
	apps.GET("/analytics/funnel", analyticsHandler.Funnel)
	apps.GET("/analytics/recruiter-performance-v2", analyticsHandler.RecruiterPerformanceV2)
	apps.GET("/:id", appHandler.GetApplicationByID)
	apps.PATCH("/:id", appHandler.UpdateApplication)
	apps.DELETE("/:id", appHandler.DeleteApplication)
	apps.GET("/:id/timeline", appHandler.GetTimeline)
	apps.POST("/:id/notes", appHandler.AddNote)

	t.Cleanup(func() {
		env.users.AssertExpectations(t)
		env.apps.AssertExpectations(t)
		env.events.AssertExpectations(t)
		env.analytics.AssertExpectations(t)
	})
	return env
}

func (env *testEnv) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
