package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/authz"
	"go-dayflow-hrms/internal/model"
)

type NavigationHandler struct {
	guard *authz.Guard
}

func NewNavigationHandler(guard *authz.Guard) *NavigationHandler {
	return &NavigationHandler{guard: guard}
}

// Items returns the sidebar entries visible to the session's effective
// role, in canonical order
// GET /api/v1/navigation
func (h *NavigationHandler) Items(c *fiber.Ctx) error {
	role, ok := c.Locals("effective_role").(model.Role)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.JSON(authz.VisibleItems(model.NavItems, role))
}

// Evaluate answers whether the session may render a client route
// GET /api/v1/navigation/guard?path=/payroll-management
func (h *NavigationHandler) Evaluate(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(400).JSON(fiber.Map{"error": "path query parameter is required"})
	}

	role, _ := c.Locals("effective_role").(model.Role)
	authenticated := c.Locals("user_id") != nil

	return c.JSON(h.guard.EvaluatePath(path, authenticated, role))
}
