package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/handlers"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/jobs"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/mail"
	"github.com/WeeklyLogs/weekly_log_app/internal/repositories/database/pgsql"
	"github.com/WeeklyLogs/weekly_log_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title WLA Backend API
// @version 1.0
// @description Backend for student weekly log submission and supervisor verification.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)
	mailer := mail.NewSMTPMailer(cfg)
	serviceContainer := services.NewServiceContainer(cfg, repos, mailer)

	// Seed the bootstrap super admin when none exists
	if err := serviceContainer.Provisioning.EnsureSuperAdmin(context.Background(),
		cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword,
		cfg.BootstrapAdminName, cfg.BootstrapAdminEmail); err != nil {
		logger.Error("Failed to ensure super admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Schedule verification token hygiene
	purgeJob := jobs.NewTokenPurgeJob(serviceContainer.VerificationToken, cfg.TokenPurgeMaxAge, logger)
	if err := purgeJob.Start(cfg.TokenPurgeCron); err != nil {
		logger.Error("Failed to start token purge job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer purgeJob.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending schema migrations through a temporary
// database/sql connection on the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	c.MaxAge = 12 * time.Hour
	if cfg.IsProduction {
		c.AllowOrigins = []string{cfg.AppBaseURL}
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
