package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-dayflow-hrms/internal/authz"
	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/session"
	"go-dayflow-hrms/pkg/jwt"
)

// RequireAuth validates the bearer token, checks the session is still
// live and sets identity info in context for downstream handlers. The
// effective role always comes from the live session, never from the
// token, so a "view as" toggle applies immediately.
func RequireAuth(sessions *session.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		sess, ok := sessions.Get(claims.SessionID)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
		}

		c.Locals("user_id", sess.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("session_id", sess.ID)
		c.Locals("effective_role", sess.EffectiveRole)

		return c.Next()
	}
}

// RequireRole gates a route on the session's effective role. With
// enforcement off in the guard, the legacy behavior applies: the route
// renders for anyone authenticated and is merely hidden from the nav.
func RequireRole(guard *authz.Guard, role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !guard.EnforcesRoles() {
			return c.Next()
		}
		effective, ok := c.Locals("effective_role").(model.Role)
		if !ok || effective != role {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires " + string(role) + " role"})
		}
		return c.Next()
	}
}
