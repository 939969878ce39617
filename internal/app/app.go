package app

import (
	"context"

	"job-tracker-api/config"
	"job-tracker-api/internal/ratelimit"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil when Redis is disabled
	Validator   *validator.Validate
	Limiter     ratelimit.Limiter

	UserService        services.UserService
	ApplicationService services.ApplicationService
	EventService       services.EventService
	AnalyticsService   services.AnalyticsService
}

// New builds the repositories and services on top of the given connections.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	userRepo := postgres.NewUserRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)
	eventRepo := postgres.NewApplicationEventRepo(pool)
	analyticsRepo := postgres.NewAnalyticsRepo(pool)

	return &Application{
		Config:             cfg,
		DBPool:             pool,
		RedisClient:        redisClient,
		Validator:          validate,
		Limiter:            NewLimiter(cfg.RateLimit, redisClient),
		UserService:        services.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		ApplicationService: services.NewApplicationService(pool, appRepo, eventRepo),
		EventService:       services.NewEventService(pool, appRepo, eventRepo),
		AnalyticsService:   services.NewAnalyticsService(analyticsRepo),
	}
}

// NewLimiter picks the rate limit backend. Redis is used only when a client is available.
func NewLimiter(cfg config.RateLimitConfig, redisClient *redis.Client) ratelimit.Limiter {
	if cfg.Backend == "redis" && redisClient != nil {
		return ratelimit.NewRedisLimiter(redisClient)
	}
	return ratelimit.NewMemoryLimiter()
}

// HealthChecks returns a ping per configured dependency.
func (a *Application) HealthChecks() map[string]func(ctx context.Context) error {
	checks := make(map[string]func(ctx context.Context) error)
	if a.DBPool != nil {
		checks["database"] = a.DBPool.Ping
	}
	if a.RedisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.RedisClient.Ping(ctx).Err()
		}
	}
	return checks
}
