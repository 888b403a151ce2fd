package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-dayflow-hrms/internal/service"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// History returns the session owner's attendance records with the
// current punch state
// GET /api/v1/attendance
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	records, err := h.attendanceService.HistoryFor(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	status, err := h.attendanceService.Status(sessionID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"punch":   status,
	})
}

// CheckIn marks the session present
// POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	status, err := h.attendanceService.CheckIn(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	return c.JSON(status)
}

// CheckOut ends the session's working day
// POST /api/v1/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	status, err := h.attendanceService.CheckOut(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNotCheckedIn) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	return c.JSON(status)
}
