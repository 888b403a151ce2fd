package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/session"
	"go-dayflow-hrms/internal/store"
	"go-dayflow-hrms/pkg/jwt"
)

func newAuthFixture() (AuthService, *session.Registry, store.UserStore) {
	users := store.NewUserStore(store.SeedUsers())
	attendance := store.NewAttendanceStore(store.SeedAttendance())
	sessions := session.NewRegistry()
	svc := NewAuthService(users, attendance, sessions, nil, 0)
	return svc, sessions, users
}

func sessionID(t *testing.T, token string) uuid.UUID {
	t.Helper()
	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	return claims.SessionID
}

func TestLoginAdmin(t *testing.T) {
	svc, sessions, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), "sarah.mitchell@dayflow.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Equal(t, model.RoleAdmin, resp.EffectiveRole)

	sess, ok := sessions.Get(sessionID(t, resp.Token))
	require.True(t, ok)
	assert.Equal(t, "u1", sess.UserID)
}

func TestLoginIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), "SARAH.MITCHELL@DAYFLOW.COM", "x")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "nobody@x.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPasswordIsNotVerified(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), "james.wilson@dayflow.com", "definitely-wrong")
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, resp.EffectiveRole)
}

func TestLoginCancelledContext(t *testing.T) {
	users := store.NewUserStore(store.SeedUsers())
	attendance := store.NewAttendanceStore(store.SeedAttendance())
	sessions := session.NewRegistry()
	svc := NewAuthService(users, attendance, sessions, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "sarah.mitchell@dayflow.com", "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoginBootstrapsPunchFromTodayRecord(t *testing.T) {
	svc, sessions, _ := newAuthFixture()

	// u2's seeded record for today has a check-in and no check-out.
	resp, err := svc.Login(context.Background(), "james.wilson@dayflow.com", "x")
	require.NoError(t, err)

	sess, ok := sessions.Get(sessionID(t, resp.Token))
	require.True(t, ok)
	assert.True(t, sess.CheckedIn)
	require.NotNil(t, sess.CheckInAt)
	assert.Equal(t, "09:05", *sess.CheckInAt)
}

func TestSignupSynthesizesIdentity(t *testing.T) {
	svc, _, users := newAuthFixture()

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Name:       "New Admin",
		EmployeeID: "DF010",
		Email:      "new.admin@dayflow.com",
		Password:   "secret-pass",
		Role:       model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "HR Manager", resp.User.JobTitle)
	assert.Equal(t, "Human Resources", resp.User.Department)
	assert.Equal(t, model.RoleAdmin, resp.EffectiveRole)
	assert.NotEmpty(t, resp.User.ID)

	stored, err := users.FindByEmail("new.admin@dayflow.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)
}

func TestSignupEmployeeDefaults(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Name:       "New Person",
		EmployeeID: "DF011",
		Email:      "new.person@dayflow.com",
		Password:   "secret-pass",
		Role:       model.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, "Employee", resp.User.JobTitle)
	assert.Equal(t, "General", resp.User.Department)
}

func TestSignupInvalidRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Name: "X", EmployeeID: "DF012", Email: "x@dayflow.com", Password: "secret", Role: "superuser",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, sessions, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), "sarah.mitchell@dayflow.com", "x")
	require.NoError(t, err)
	id := sessionID(t, resp.Token)

	svc.Logout(id)
	svc.Logout(id) // second call is a no-op

	_, ok := sessions.Get(id)
	assert.False(t, ok)
}

func TestSetViewAsRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	admin, err := svc.Login(context.Background(), "sarah.mitchell@dayflow.com", "x")
	require.NoError(t, err)
	adminSession := sessionID(t, admin.Token)

	role, err := svc.SetViewAsRole(adminSession, model.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, role)

	role, err = svc.SetViewAsRole(adminSession, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	employee, err := svc.Login(context.Background(), "james.wilson@dayflow.com", "x")
	require.NoError(t, err)
	employeeSession := sessionID(t, employee.Token)

	role, err = svc.SetViewAsRole(employeeSession, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleEmployee, role, "employees cannot escalate")

	_, err = svc.SetViewAsRole(uuid.New(), model.RoleAdmin)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
