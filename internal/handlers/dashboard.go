package handlers

import (
	"time"

	"fraudguard/internal/services/dashboard"
	"fraudguard/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview returns aggregate stats over the evaluation history.
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetOverview(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to get dashboard data")
	}

	return response.Success(c, "Dashboard data retrieved successfully", stats)
}

// GetAnalytics returns time-series analytics for a date range.
func (h *DashboardHandler) GetAnalytics(c *fiber.Ctx) error {
	startDate := c.Query("start_date", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	endDate := c.Query("end_date", time.Now().Format("2006-01-02"))

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return response.BadRequest(c, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return response.BadRequest(c, "end_date must be YYYY-MM-DD")
	}

	analytics, err := h.dashboardService.GetAnalytics(c.Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to get analytics")
	}

	return response.Success(c, "Analytics retrieved successfully", analytics)
}
