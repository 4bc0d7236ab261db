package handlers

import (
	"fraudguard/internal/repositories"
	"fraudguard/internal/services/scoring"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	scoringService scoring.Service
}

func NewHealthHandler(scoringService scoring.Service) *HealthHandler {
	return &HealthHandler{
		scoringService: scoringService,
	}
}

// Check reports overall service health. The scoring entry flips to
// "degraded" when the model or scaler artifact failed to load.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	scoringStatus := "ready"
	status := "ok"
	if !h.scoringService.Available() {
		scoringStatus = "degraded"
		status = "degraded"
	}

	redisStatus := "connected"
	if repositories.CacheService == nil {
		redisStatus = "unavailable"
	} else if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
		redisStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"version": "1.0.0",
		"services": fiber.Map{
			"scoring":  scoringStatus,
			"database": "connected",
			"redis":    redisStatus,
		},
	})
}

// CacheStats exposes Redis connection pool statistics.
func CacheStats(c *fiber.Ctx) error {
	if repositories.CacheService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "cache not configured",
		})
	}

	poolStats := repositories.CacheService.GetStats(c.Context())
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
