package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/store"
)

func newLeaveService() LeaveService {
	return NewLeaveService(store.NewLeaveStore(store.SeedLeaves()), nil, 0)
}

func TestSubmitLeave(t *testing.T) {
	svc := newLeaveService()

	leave, err := svc.Submit(context.Background(), "u2", &SubmitLeaveRequest{
		Type:     model.LeaveTypeSick,
		FromDate: "2026-01-06",
		ToDate:   "2026-01-07",
		Reason:   "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LeavePending, leave.Status)
	assert.Equal(t, 2, leave.Days)
	assert.Equal(t, "u2", leave.UserID)

	history, err := svc.ListForOwner("u2")
	require.NoError(t, err)
	assert.Contains(t, leaveIDs(history), leave.ID)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Contains(t, leaveIDs(pending), leave.ID)
}

func TestSubmitSingleDay(t *testing.T) {
	svc := newLeaveService()

	leave, err := svc.Submit(context.Background(), "u3", &SubmitLeaveRequest{
		Type:     model.LeaveTypeCasual,
		FromDate: "2026-02-10",
		ToDate:   "2026-02-10",
		Reason:   "appointment",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, leave.Days)
}

func TestSubmitValidation(t *testing.T) {
	svc := newLeaveService()

	tests := []struct {
		name string
		req  SubmitLeaveRequest
		want error
	}{
		{
			name: "empty reason",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, FromDate: "2026-01-06", ToDate: "2026-01-07", Reason: ""},
			want: ErrMissingFields,
		},
		{
			name: "blank reason",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, FromDate: "2026-01-06", ToDate: "2026-01-07", Reason: "   "},
			want: ErrMissingFields,
		},
		{
			name: "empty type",
			req:  SubmitLeaveRequest{FromDate: "2026-01-06", ToDate: "2026-01-07", Reason: "r"},
			want: ErrMissingFields,
		},
		{
			name: "empty dates",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, Reason: "r"},
			want: ErrMissingFields,
		},
		{
			name: "unknown type",
			req:  SubmitLeaveRequest{Type: "Gardening Leave", FromDate: "2026-01-06", ToDate: "2026-01-07", Reason: "r"},
			want: ErrInvalidLeaveType,
		},
		{
			name: "bad from date",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, FromDate: "06/01/2026", ToDate: "2026-01-07", Reason: "r"},
			want: ErrInvalidDate,
		},
		{
			name: "bad to date",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, FromDate: "2026-01-06", ToDate: "soon", Reason: "r"},
			want: ErrInvalidDate,
		},
		{
			name: "reversed range",
			req:  SubmitLeaveRequest{Type: model.LeaveTypeSick, FromDate: "2026-01-07", ToDate: "2026-01-06", Reason: "r"},
			want: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), "u2", &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmitCancelledContext(t *testing.T) {
	leaves := store.NewLeaveStore(store.SeedLeaves())
	svc := NewLeaveService(leaves, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, "u2", &SubmitLeaveRequest{
		Type: model.LeaveTypeSick, FromDate: "2026-01-06", ToDate: "2026-01-07", Reason: "flu",
	})
	assert.ErrorIs(t, err, context.Canceled)

	// the suppressed submission must not have been recorded
	history, err := leaves.FindByUser("u2")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestDecideApprove(t *testing.T) {
	svc := newLeaveService()

	require.NoError(t, svc.Decide("l1", model.LeaveApproved, model.RoleAdmin))

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.NotContains(t, leaveIDs(pending), "l1")

	// the shared store makes the decision visible in the owner's history
	history, err := svc.ListForOwner("u2")
	require.NoError(t, err)
	var found bool
	for _, l := range history {
		if l.ID == "l1" {
			assert.Equal(t, model.LeaveApproved, l.Status)
			found = true
		}
	}
	assert.True(t, found)
}

func TestDecideIsRejectingOnRepeat(t *testing.T) {
	svc := newLeaveService()

	require.NoError(t, svc.Decide("l1", model.LeaveApproved, model.RoleAdmin))

	err := svc.Decide("l1", model.LeaveRejected, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrLeaveDecided)
}

func TestDecideRequiresAdmin(t *testing.T) {
	svc := newLeaveService()

	err := svc.Decide("l1", model.LeaveApproved, model.RoleEmployee)
	assert.ErrorIs(t, err, ErrDecisionForbidden)

	// status unchanged
	pending, err2 := svc.ListPending()
	require.NoError(t, err2)
	assert.Contains(t, leaveIDs(pending), "l1")
}

func TestDecideOnDecidedSeedRequest(t *testing.T) {
	svc := newLeaveService()

	// l2 is seeded Approved
	err := svc.Decide("l2", model.LeaveRejected, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrLeaveDecided)
}

func TestDecideUnknownRequest(t *testing.T) {
	svc := newLeaveService()

	err := svc.Decide("nope", model.LeaveApproved, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}

func TestDecideInvalidOutcome(t *testing.T) {
	svc := newLeaveService()

	err := svc.Decide("l1", model.LeavePending, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestListPendingSeed(t *testing.T) {
	svc := newLeaveService()

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"l1", "l3"}, leaveIDs(pending))
}

func leaveIDs(leaves []model.LeaveRequest) []string {
	ids := make([]string, len(leaves))
	for i, l := range leaves {
		ids[i] = l.ID
	}
	return ids
}
