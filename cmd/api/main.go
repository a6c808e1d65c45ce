package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "auditplay/docs" // This is for Swagger
	"auditplay/internal/auth"
	"auditplay/internal/config"
	"auditplay/internal/database"
	"auditplay/internal/handlers"
	"auditplay/internal/logger"
	"auditplay/internal/middleware"
	"auditplay/internal/repository"
	"auditplay/internal/secrets"
	"auditplay/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title AuditPlay API
// @version 1.0
// @description Backend API for the AuditPlay audit questionnaire platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", logger.GetLevel(cfg.Log.Level),
	)

	// Resolve secrets from Vault when enabled
	if cfg.Vault.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := secrets.Resolve(ctx, cfg); err != nil {
			cancel()
			slog.Error("Failed to resolve secrets from vault", "error", err)
			os.Exit(1)
		}
		cancel()
		slog.Info("Secrets resolved from vault", "vault_addr", cfg.Vault.Address)
	}

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	responseRepo := repository.NewResponseRepository(db.DB)
	userResponseRepo := repository.NewUserResponseRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)
	evaluationRepo := repository.NewEvaluationRepository(db.DB)

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	authSvc := service.NewAuthService(userRepo, authService)
	auditSvc := service.NewAuditService(db.DB, responseRepo, userResponseRepo, categoryRepo)
	evaluationSvc := service.NewEvaluationService(evaluationRepo)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc)
	categoryHandler := handlers.NewCategoryHandler(auditSvc)
	auditHandler := handlers.NewAuditHandler(auditSvc)
	userAuditHandler := handlers.NewUserAuditHandler(auditSvc, evaluationSvc)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationSvc)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", authMw.Authenticate(http.HandlerFunc(authHandler.Me)))

	// Category routes
	mux.HandleFunc("GET /api/categories", categoryHandler.GetCategories)
	mux.HandleFunc("POST /api/categories/resetAll", categoryHandler.ResetAll)
	mux.HandleFunc("POST /api/categories/{category}/reset", categoryHandler.ResetCategory)

	// Shared audit routes
	mux.HandleFunc("GET /api/audits/{category}", auditHandler.GetResponses)
	mux.HandleFunc("POST /api/audits/{category}", auditHandler.SaveResponses)

	// Per-user audit routes
	mux.HandleFunc("GET /api/userAudits/pendingForAuditor/{auditorId}/{category}", userAuditHandler.PendingForAuditor)
	mux.HandleFunc("GET /api/userAudits/{category}/list", userAuditHandler.ListRespondents)
	mux.HandleFunc("GET /api/userAudits/{category}/{userId}", userAuditHandler.GetUserResponses)
	mux.HandleFunc("POST /api/userAudits/{category}", userAuditHandler.SaveUserResponses)

	// Evaluation routes
	mux.HandleFunc("POST /api/evaluations", evaluationHandler.Record)
	mux.HandleFunc("GET /api/evaluations/user/{userId}/{category}", evaluationHandler.ListForUser)

	// Health
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /api/health", healthHandler.APIHealth)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(
					authMw.OptionalAuth(mux),
				),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
