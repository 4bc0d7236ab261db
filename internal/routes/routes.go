// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"fraudguard/internal/artifacts"
	"fraudguard/internal/config"
	"fraudguard/internal/handlers"
	"fraudguard/internal/middleware"
	"fraudguard/internal/models"
	"fraudguard/internal/repositories"
	"fraudguard/internal/services/auth"
	"fraudguard/internal/services/dashboard"
	"fraudguard/internal/services/scoring"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// A nil bundle starts the scoring routes in degraded mode.
func SetupRoutes(app *fiber.App, db *gorm.DB, bundle *artifacts.Bundle) {
	// Initialize repositories
	evalRepo := repositories.NewEvaluationRepository(db)
	signalTracker := repositories.NewSignalTracker(repositories.CacheService)

	// Initialize auth service and handler
	authService := auth.NewService(auth.Credential{
		Email:        config.GetEnv("OPERATOR_EMAIL", ""),
		PasswordHash: config.GetEnv("OPERATOR_PASSWORD_HASH", ""),
		Role:         config.GetEnv("OPERATOR_ROLE", "operator"),
	})
	authHandler := handlers.NewAuthHandler(authService)

	// Initialize scoring service; a nil bundle means degraded mode
	var scorer scoring.Scorer
	if bundle != nil {
		scorer = bundle
	}
	var tracker scoring.SignalTracker
	if repositories.CacheService != nil {
		tracker = signalTracker
	}
	scoringService := scoring.NewService(scorer, evalRepo, tracker, &scoring.NoopMetricsCollector{})
	scoringHandler := handlers.NewScoringHandler(scoringService, evalRepo)

	// Initialize dashboard service and handler
	dashboardService := dashboard.NewService(evalRepo, repositories.CacheService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	healthHandler := handlers.NewHealthHandler(scoringService)

	// Public routes
	api := app.Group("/api")

	api.Post("/login", authHandler.LoginOperator)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", healthHandler.Check)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to FraudGuard API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Protected routes with auth middleware
	protected := api.Use(middleware.Handler)

	protected.Post("/score", middleware.HasPermission(models.PermissionScoreWrite), scoringHandler.ScoreTransaction)
	protected.Get("/evaluations", middleware.HasPermission(models.PermissionEvaluationRead), scoringHandler.GetEvaluations)
	protected.Get("/evaluations/:id", middleware.HasPermission(models.PermissionEvaluationRead), scoringHandler.GetEvaluation)

	// Dashboard routes
	dashboardGroup := protected.Group("/dashboard", middleware.HasPermission(models.PermissionDashboardRead))
	dashboardGroup.Get("/", dashboardHandler.GetOverview)
	dashboardGroup.Get("/analytics", dashboardHandler.GetAnalytics)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/cache-stats", handlers.CacheStats)
}
