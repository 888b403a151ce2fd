package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
)

type PayrollHandler struct {
	payrollService service.PayrollService
}

func NewPayrollHandler(payrollService service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// Slip returns the session owner's payslip
// GET /api/v1/payroll
func (h *PayrollHandler) Slip(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	slip, err := h.payrollService.SlipFor(userID)
	if err != nil {
		if errors.Is(err, service.ErrSalaryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payslip"})
	}

	return c.JSON(slip)
}

// All returns the payroll management table
// GET /api/v1/payroll/all
func (h *PayrollHandler) All(c *fiber.Ctx) error {
	rows, err := h.payrollService.All()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payroll"})
	}

	return c.JSON(rows)
}

// Update replaces a user's salary structure
// PUT /api/v1/payroll/:userId
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	var salary model.SalaryStructure
	if err := c.BodyParser(&salary); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	slip, err := h.payrollService.Update(c.Params("userId"), salary)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update salary"})
	}

	return c.JSON(fiber.Map{
		"message": "The salary structure has been updated",
		"data":    slip,
	})
}
