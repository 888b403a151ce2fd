package store

import (
	"sync"

	"go-dayflow-hrms/internal/model"
)

type AttendanceStore interface {
	FindByUser(userID string) ([]model.AttendanceRecord, error)
	FindByUserAndDate(userID, date string) (*model.AttendanceRecord, error)
	CountByDateAndStatus(date, status string) (int, error)
}

type attendanceStore struct {
	mu      sync.RWMutex
	records []model.AttendanceRecord
}

func NewAttendanceStore(seed []model.AttendanceRecord) AttendanceStore {
	s := &attendanceStore{}
	s.records = append(s.records, seed...)
	return s
}

func (s *attendanceStore) FindByUser(userID string) ([]model.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *attendanceStore) FindByUserAndDate(userID, date string) (*model.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.UserID == userID && r.Date == date {
			found := r
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *attendanceStore) CountByDateAndStatus(date, status string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, r := range s.records {
		if r.Date == date && r.Status == status {
			count++
		}
	}
	return count, nil
}
