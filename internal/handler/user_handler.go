package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Directory lists all employees
// GET /api/v1/employees
func (h *UserHandler) Directory(c *fiber.Ctx) error {
	users, err := h.userService.Directory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}

	return c.JSON(users)
}

// OwnProfile returns the session owner's profile
// GET /api/v1/profile
func (h *UserHandler) OwnProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return h.profile(c, userID)
}

// Profile returns another user's profile
// GET /api/v1/profile/:userId
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	return h.profile(c, c.Params("userId"))
}

func (h *UserHandler) profile(c *fiber.Ctx, userID string) error {
	user, err := h.userService.ProfileOf(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(user)
}
