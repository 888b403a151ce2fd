package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/service"
	"go-dayflow-hrms/internal/store"
)

func newLeaveApp(role model.Role) *fiber.App {
	svc := service.NewLeaveService(store.NewLeaveStore(store.SeedLeaves()), nil, 0)
	h := NewLeaveHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "u2")
		c.Locals("session_id", uuid.New())
		c.Locals("effective_role", role)
		return c.Next()
	})
	app.Post("/leaves", h.Submit)
	app.Post("/leaves/:id/decision", h.Decide)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestDecideHandlerRequiresOutcome(t *testing.T) {
	app := newLeaveApp(model.RoleAdmin)

	assert.Equal(t, 400, postJSON(t, app, "/leaves/l1/decision", `{}`))
}

func TestDecideHandlerApproves(t *testing.T) {
	app := newLeaveApp(model.RoleAdmin)

	assert.Equal(t, 200, postJSON(t, app, "/leaves/l1/decision", `{"outcome":"Approved"}`))
	// second decision on the same request conflicts
	assert.Equal(t, 409, postJSON(t, app, "/leaves/l1/decision", `{"outcome":"Rejected"}`))
}

func TestDecideHandlerForbiddenForEmployees(t *testing.T) {
	app := newLeaveApp(model.RoleEmployee)

	assert.Equal(t, 403, postJSON(t, app, "/leaves/l1/decision", `{"outcome":"Approved"}`))
}

func TestSubmitHandlerRejectsEmptyReason(t *testing.T) {
	app := newLeaveApp(model.RoleEmployee)

	body := `{"type":"Sick Leave","from_date":"2026-01-06","to_date":"2026-01-07","reason":""}`
	assert.Equal(t, 400, postJSON(t, app, "/leaves", body))
}

func TestSubmitHandlerCreates(t *testing.T) {
	app := newLeaveApp(model.RoleEmployee)

	body := `{"type":"Sick Leave","from_date":"2026-01-06","to_date":"2026-01-07","reason":"flu"}`
	assert.Equal(t, 201, postJSON(t, app, "/leaves", body))
}
