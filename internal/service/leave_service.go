package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/store"
	"go-dayflow-hrms/internal/ws"
)

var (
	ErrMissingFields     = errors.New("all fields are required")
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrLeaveDecided      = errors.New("leave request has already been decided")
	ErrDecisionForbidden = errors.New("only admins can decide leave requests")
	ErrInvalidLeaveType  = errors.New("invalid leave type")
	ErrInvalidDateRange  = errors.New("from date cannot be after to date")
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidOutcome    = errors.New("decision must be Approved or Rejected")
)

type LeaveService interface {
	Submit(ctx context.Context, ownerID string, req *SubmitLeaveRequest) (*model.LeaveRequest, error)
	ListPending() ([]model.LeaveRequest, error)
	ListForOwner(ownerID string) ([]model.LeaveRequest, error)
	Decide(requestID string, outcome model.LeaveStatus, actorRole model.Role) error
}

type SubmitLeaveRequest struct {
	Type     string `json:"type" validate:"required"`
	FromDate string `json:"from_date" validate:"required,hrdate"`
	ToDate   string `json:"to_date" validate:"required,hrdate"`
	Reason   string `json:"reason" validate:"required"`
}

type leaveService struct {
	leaves  store.LeaveStore
	wsHub   *ws.Hub
	latency time.Duration
}

func NewLeaveService(leaves store.LeaveStore, hub *ws.Hub, latency time.Duration) LeaveService {
	return &leaveService{leaves: leaves, wsHub: hub, latency: latency}
}

// Submit creates a Pending request. All fields are required, the range
// must be ordered (fromDate <= toDate) and the day count is the
// inclusive span of the range.
func (s *leaveService) Submit(ctx context.Context, ownerID string, req *SubmitLeaveRequest) (*model.LeaveRequest, error) {
	// the workflow validates its own inputs; the HTTP layer's tag
	// validation is a convenience, not the contract
	if req.Type == "" || req.FromDate == "" || req.ToDate == "" || strings.TrimSpace(req.Reason) == "" {
		return nil, ErrMissingFields
	}
	if !model.ValidLeaveType(req.Type) {
		return nil, ErrInvalidLeaveType
	}
	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	leave := &model.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Type:      req.Type,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Days:      int(to.Sub(from).Hours()/24) + 1,
		Reason:    req.Reason,
		Status:    model.LeavePending,
		AppliedOn: time.Now().Format("2006-01-02"),
	}
	if err := s.leaves.Create(leave); err != nil {
		return nil, err
	}

	s.broadcast("leave_submitted", leave)

	return leave, nil
}

// ListPending returns the admin-facing pending queue across all owners.
func (s *leaveService) ListPending() ([]model.LeaveRequest, error) {
	return s.leaves.FindPending()
}

// ListForOwner returns the owner's full history, any status.
func (s *leaveService) ListForOwner(ownerID string) ([]model.LeaveRequest, error) {
	return s.leaves.FindByUser(ownerID)
}

// Decide moves a Pending request to its terminal state. The transition
// happens exactly once: a second decision on the same request fails.
// Decision rights are checked against the actor's effective role.
func (s *leaveService) Decide(requestID string, outcome model.LeaveStatus, actorRole model.Role) error {
	if actorRole != model.RoleAdmin {
		return ErrDecisionForbidden
	}
	if !outcome.Terminal() {
		return ErrInvalidOutcome
	}

	leave, err := s.leaves.FindByID(requestID)
	if err != nil {
		return ErrLeaveNotFound
	}
	if leave.Status != model.LeavePending {
		return ErrLeaveDecided
	}

	if err := s.leaves.UpdateStatus(requestID, outcome); err != nil {
		return err
	}

	leave.Status = outcome
	s.broadcast("leave_decided", leave)

	return nil
}

func (s *leaveService) broadcast(event string, leave *model.LeaveRequest) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.BroadcastEvent(event, map[string]interface{}{
		"leave_id": leave.ID,
		"user_id":  leave.UserID,
		"status":   leave.Status,
	})
}
