package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dayflow-hrms/internal/store"
)

func newDashboardService() DashboardService {
	return NewDashboardService(
		store.NewUserStore(store.SeedUsers()),
		store.NewAttendanceStore(store.SeedAttendance()),
		store.NewLeaveStore(store.SeedLeaves()),
	)
}

func TestAdminStats(t *testing.T) {
	svc := newDashboardService()

	stats, err := svc.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalEmployees)
	assert.Equal(t, 2, stats.PresentToday) // u2 and u3 have Present rows for today
	assert.Equal(t, 2, stats.PendingLeaves)
	assert.Len(t, stats.RecentPending, 2)
}

func TestEmployeeStats(t *testing.T) {
	svc := newDashboardService()

	stats, err := svc.EmployeeStats("u2")
	require.NoError(t, err)
	require.NotNil(t, stats.TodayCheckIn)
	assert.Equal(t, "09:05", *stats.TodayCheckIn)
	assert.Equal(t, 5, stats.PresentDays)
	assert.Equal(t, 1, stats.PendingRequests) // l1
	assert.Equal(t, 0, stats.ApprovedLeaves)
}

func TestEmployeeStatsNoRecords(t *testing.T) {
	svc := newDashboardService()

	stats, err := svc.EmployeeStats("u1")
	require.NoError(t, err)
	assert.Nil(t, stats.TodayCheckIn)
	assert.Equal(t, 0, stats.PresentDays)
}
