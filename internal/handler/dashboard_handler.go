package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the dashboard for the session's effective role: admins
// viewing as employee get the employee dashboard, and vice versa never
// happens because the override is admin-only.
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	role, ok := c.Locals("effective_role").(model.Role)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if role == model.RoleAdmin {
		stats, err := h.dashboardService.AdminStats()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
		}
		return c.JSON(stats)
	}

	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	stats, err := h.dashboardService.EmployeeStats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}
