package service

import (
	"time"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/store"
)

type DashboardService interface {
	AdminStats() (*AdminStats, error)
	EmployeeStats(userID string) (*EmployeeStats, error)
}

type AdminStats struct {
	TotalEmployees int                  `json:"total_employees"`
	PresentToday   int                  `json:"present_today"`
	PendingLeaves  int                  `json:"pending_leaves"`
	RecentPending  []model.LeaveRequest `json:"recent_pending"`
}

type EmployeeStats struct {
	TodayCheckIn    *string `json:"today_check_in"`
	PresentDays     int     `json:"present_days"`
	PendingRequests int     `json:"pending_requests"`
	ApprovedLeaves  int     `json:"approved_leaves"`
}

type dashboardService struct {
	users      store.UserStore
	attendance store.AttendanceStore
	leaves     store.LeaveStore
}

func NewDashboardService(users store.UserStore, attendance store.AttendanceStore, leaves store.LeaveStore) DashboardService {
	return &dashboardService{users: users, attendance: attendance, leaves: leaves}
}

func (s *dashboardService) AdminStats() (*AdminStats, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	present, err := s.attendance.CountByDateAndStatus(today, model.AttendancePresent)
	if err != nil {
		return nil, err
	}
	pending, err := s.leaves.FindPending()
	if err != nil {
		return nil, err
	}

	recent := pending
	if len(recent) > 3 {
		recent = recent[:3]
	}

	return &AdminStats{
		TotalEmployees: len(users),
		PresentToday:   present,
		PendingLeaves:  len(pending),
		RecentPending:  recent,
	}, nil
}

func (s *dashboardService) EmployeeStats(userID string) (*EmployeeStats, error) {
	stats := &EmployeeStats{}

	today := time.Now().Format("2006-01-02")
	if rec, err := s.attendance.FindByUserAndDate(userID, today); err == nil {
		stats.TodayCheckIn = rec.CheckIn
	}

	records, err := s.attendance.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Status == model.AttendancePresent {
			stats.PresentDays++
		}
	}

	leaves, err := s.leaves.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, l := range leaves {
		switch l.Status {
		case model.LeavePending:
			stats.PendingRequests++
		case model.LeaveApproved:
			stats.ApprovedLeaves++
		}
	}

	return stats, nil
}
