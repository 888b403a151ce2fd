package store

import (
	"sync"

	"go-dayflow-hrms/internal/model"
)

type LeaveStore interface {
	FindByID(id string) (*model.LeaveRequest, error)
	FindByUser(userID string) ([]model.LeaveRequest, error)
	FindPending() ([]model.LeaveRequest, error)
	Create(req *model.LeaveRequest) error
	UpdateStatus(id string, status model.LeaveStatus) error
}

// leaveStore is the single shared table behind both the pending queue
// and per-owner history, so a decision is immediately visible in both.
type leaveStore struct {
	mu       sync.RWMutex
	requests []model.LeaveRequest
}

func NewLeaveStore(seed []model.LeaveRequest) LeaveStore {
	s := &leaveStore{}
	s.requests = append(s.requests, seed...)
	return s
}

func (s *leaveStore) FindByID(id string) (*model.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *leaveStore) FindByUser(userID string) ([]model.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.LeaveRequest
	for _, r := range s.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *leaveStore) FindPending() ([]model.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.LeaveRequest
	for _, r := range s.requests {
		if r.Status == model.LeavePending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *leaveStore) Create(req *model.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, *req)
	return nil
}

func (s *leaveStore) UpdateStatus(id string, status model.LeaveStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
