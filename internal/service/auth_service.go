package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/session"
	"go-dayflow-hrms/internal/store"
	"go-dayflow-hrms/internal/ws"
	"go-dayflow-hrms/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
	Logout(sessionID uuid.UUID)
	SetViewAsRole(sessionID uuid.UUID, role model.Role) (model.Role, error)
	Heartbeat(sessionID uuid.UUID) error
}

type SignupRequest struct {
	Name       string     `json:"name" validate:"required"`
	EmployeeID string     `json:"employee_id" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=6"`
	Role       model.Role `json:"role" validate:"required"`
}

type AuthResponse struct {
	Token         string     `json:"token"`
	User          model.User `json:"user"`
	EffectiveRole model.Role `json:"effective_role"`
}

type authService struct {
	users      store.UserStore
	attendance store.AttendanceStore
	sessions   *session.Registry
	wsHub      *ws.Hub
	latency    time.Duration
}

func NewAuthService(users store.UserStore, attendance store.AttendanceStore, sessions *session.Registry, hub *ws.Hub, latency time.Duration) AuthService {
	return &authService{
		users:      users,
		attendance: attendance,
		sessions:   sessions,
		wsHub:      hub,
		latency:    latency,
	}
}

// wait blocks for the simulated network latency. A cancelled context
// aborts before any state is mutated, so a caller torn down mid-delay
// never observes a half-applied login or submission.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login matches on email only, case-insensitively. The password is
// accepted unchecked: credential verification sits outside the mock
// trust boundary. The boolean-equivalent failure is the single
// ErrInvalidCredentials, with no account-existence side channel.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	sess := s.sessions.Create(user.ID, user.Role)
	s.bootstrapPunch(sess.ID, user.ID)

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role), sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, errors.New("failed to generate token")
	}

	s.announcePresence(user.ID, "online")

	return &AuthResponse{Token: token, User: *user, EffectiveRole: sess.EffectiveRole}, nil
}

// Signup synthesizes a new identity and signs it in. Nothing persists
// beyond the process lifetime.
func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Avatar:     "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face",
		EmployeeID: req.EmployeeID,
		JobTitle:   "Employee",
		Department: "General",
	}
	if req.Role == model.RoleAdmin {
		user.JobTitle = "HR Manager"
		user.Department = "Human Resources"
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	sess := s.sessions.Create(user.ID, user.Role)

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, string(user.Role), sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, errors.New("failed to generate token")
	}

	s.announcePresence(user.ID, "online")

	return &AuthResponse{Token: token, User: *user, EffectiveRole: sess.EffectiveRole}, nil
}

// Logout is idempotent: closing an already-closed session is a no-op.
func (s *authService) Logout(sessionID uuid.UUID) {
	sess, ok := s.sessions.Get(sessionID)
	s.sessions.Delete(sessionID)
	if ok {
		s.announcePresence(sess.UserID, "offline")
	}
}

// SetViewAsRole applies the admin-only "view as" override. For non-admin
// sessions the registry ignores the call and the effective role stays
// put; the check lives server-side even though only the UI calls this.
func (s *authService) SetViewAsRole(sessionID uuid.UUID, role model.Role) (model.Role, error) {
	effective, err := s.sessions.SetEffectiveRole(sessionID, role)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return effective, nil
}

func (s *authService) Heartbeat(sessionID uuid.UUID) error {
	if err := s.sessions.Touch(sessionID); err != nil {
		return ErrSessionNotFound
	}
	sess, ok := s.sessions.Get(sessionID)
	if ok {
		s.announcePresence(sess.UserID, "online")
	}
	return nil
}

// bootstrapPunch marks the session checked-in when today's record shows
// a check-in without a check-out, mirroring what the attendance page
// derives on mount.
func (s *authService) bootstrapPunch(sessionID uuid.UUID, userID string) {
	today := time.Now().Format("2006-01-02")
	rec, err := s.attendance.FindByUserAndDate(userID, today)
	if err != nil {
		return
	}
	if rec.CheckIn != nil && rec.CheckOut == nil {
		s.sessions.SetPunch(sessionID, true, rec.CheckIn)
	}
}

func (s *authService) announcePresence(userID, status string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.BroadcastEvent("user_status_update", map[string]interface{}{
		"user_id": userID,
		"status":  status,
	})
}
