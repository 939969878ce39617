package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-tracker-api/config"
	"job-tracker-api/internal/api/handlers"
	"job-tracker-api/internal/app"
	"job-tracker-api/internal/database"
	"job-tracker-api/internal/server"

	_ "job-tracker-api/docs" // Swagger document served at /swagger

	"github.com/redis/go-redis/v9"
)

// @title           Job Tracker API
// @version         1.0
// @description     Track job applications through the hiring pipeline, with a per-application timeline and analytics.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// --- Apply Schema Migrations ---
	sqlDB, err := database.OpenSQL(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to open database for migrations: %v", err)
	}
	if err := database.Migrate(startupCtx, sqlDB); err != nil {
		sqlDB.Close()
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	sqlDB.Close()

	dbPool, err := database.NewConnectionPool(startupCtx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Initialize Redis Client (optional) ---
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(startupCtx, cfg.Redis)
		if err != nil {
			log.Printf("WARN: Failed to connect to Redis: %v. Continuing with the in-memory rate limiter.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	} else {
		log.Println("Redis disabled, skipping initialization.")
	}

	application := app.New(cfg, dbPool, redisClient, handlers.NewValidator())
	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	case err := <-serverErr:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
