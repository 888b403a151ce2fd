package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
	"go-dayflow-hrms/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ViewAsRequest represents the role override request body
type ViewAsRequest struct {
	Role model.Role `json:"role" validate:"required"`
}

// Login handles sign-in
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required", "details": errs})
	}

	resp, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Login failed"})
	}

	return c.JSON(resp)
}

// Signup handles account creation
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req service.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required", "details": errs})
	}

	resp, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Signup failed"})
	}

	return c.Status(201).JSON(resp)
}

// Logout closes the current session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	h.authService.Logout(sessionID)

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// ViewAs applies the admin-only role override
// POST /api/v1/auth/view-as
func (h *AuthHandler) ViewAs(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req ViewAsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if !req.Role.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Role must be admin or employee"})
	}

	effective, err := h.authService.SetViewAsRole(sessionID, req.Role)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	return c.JSON(fiber.Map{"effective_role": effective})
}

// Heartbeat keeps presence fresh
// POST /api/v1/auth/heartbeat
func (h *AuthHandler) Heartbeat(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("session_id").(uuid.UUID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.authService.Heartbeat(sessionID); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	return c.JSON(fiber.Map{"message": "Heartbeat received", "status": "online"})
}
