package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
	"go-dayflow-hrms/pkg/validator"
)

type LeaveHandler struct {
	leaveService service.LeaveService
}

func NewLeaveHandler(leaveService service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// DecisionRequest represents the approval/rejection request body
type DecisionRequest struct {
	Outcome model.LeaveStatus `json:"outcome" validate:"required"`
}

// Submit applies for leave on behalf of the current session
// POST /api/v1/leaves
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	var req service.SubmitLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Please fill in all fields", "details": errs})
	}

	ownerID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	leave, err := h.leaveService.Submit(c.UserContext(), ownerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrInvalidLeaveType),
			errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidDateRange):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to submit leave request"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Your request has been sent for approval",
		"data":    leave,
	})
}

// History returns the session owner's leave history
// GET /api/v1/leaves
func (h *LeaveHandler) History(c *fiber.Ctx) error {
	ownerID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	leaves, err := h.leaveService.ListForOwner(ownerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leave history"})
	}

	return c.JSON(leaves)
}

// Pending returns the admin-facing pending queue
// GET /api/v1/leaves/pending
func (h *LeaveHandler) Pending(c *fiber.Ctx) error {
	leaves, err := h.leaveService.ListPending()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending leaves"})
	}

	return c.JSON(leaves)
}

// Decide approves or rejects a pending request
// POST /api/v1/leaves/:id/decision
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Outcome is required", "details": errs})
	}

	role, ok := c.Locals("effective_role").(model.Role)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	err := h.leaveService.Decide(c.Params("id"), req.Outcome, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDecisionForbidden):
			return c.Status(403).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrLeaveNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrLeaveDecided):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidOutcome):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to decide leave request"})
		}
	}

	return c.JSON(fiber.Map{"message": "Leave request " + string(req.Outcome)})
}
