package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/session"
	"go-dayflow-hrms/internal/store"
)

var (
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrNotCheckedIn     = errors.New("not checked in")
)

type AttendanceService interface {
	HistoryFor(userID string) ([]model.AttendanceRecord, error)
	Status(sessionID uuid.UUID) (*PunchStatus, error)
	CheckIn(sessionID uuid.UUID) (*PunchStatus, error)
	CheckOut(sessionID uuid.UUID) (*PunchStatus, error)
}

type PunchStatus struct {
	CheckedIn bool    `json:"checked_in"`
	CheckInAt *string `json:"check_in_at,omitempty"`
}

type attendanceService struct {
	records  store.AttendanceStore
	sessions *session.Registry
}

func NewAttendanceService(records store.AttendanceStore, sessions *session.Registry) AttendanceService {
	return &attendanceService{records: records, sessions: sessions}
}

// HistoryFor returns the stored records for one user. Display-only:
// the punch clock never writes here.
func (s *attendanceService) HistoryFor(userID string) ([]model.AttendanceRecord, error) {
	return s.records.FindByUser(userID)
}

func (s *attendanceService) Status(sessionID uuid.UUID) (*PunchStatus, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &PunchStatus{CheckedIn: sess.CheckedIn, CheckInAt: sess.CheckInAt}, nil
}

// CheckIn toggles the session's punch state on. The timestamp lives on
// the session only and resets with it.
func (s *attendanceService) CheckIn(sessionID uuid.UUID) (*PunchStatus, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.CheckedIn {
		return nil, ErrAlreadyCheckedIn
	}
	at := time.Now().Format("15:04")
	if err := s.sessions.SetPunch(sessionID, true, &at); err != nil {
		return nil, ErrSessionNotFound
	}
	return &PunchStatus{CheckedIn: true, CheckInAt: &at}, nil
}

func (s *attendanceService) CheckOut(sessionID uuid.UUID) (*PunchStatus, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !sess.CheckedIn {
		return nil, ErrNotCheckedIn
	}
	if err := s.sessions.SetPunch(sessionID, false, nil); err != nil {
		return nil, ErrSessionNotFound
	}
	return &PunchStatus{CheckedIn: false}, nil
}
