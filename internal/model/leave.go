package model

// LeaveStatus is the lifecycle state of a leave request. Pending is the
// only non-terminal state; a decided request is never reopened.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// Terminal reports whether s is a decided state.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// Leave types offered by the application form.
const (
	LeaveTypeSick   = "Sick Leave"
	LeaveTypeCasual = "Casual Leave"
	LeaveTypeEarned = "Earned Leave"
)

// ValidLeaveType reports whether t is one of the offered leave types.
func ValidLeaveType(t string) bool {
	return t == LeaveTypeSick || t == LeaveTypeCasual || t == LeaveTypeEarned
}

// LeaveRequest is a request for time off. It belongs to its creator for
// read access; decision rights belong to admin sessions.
type LeaveRequest struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Type      string      `json:"type"`
	FromDate  string      `json:"from_date"` // YYYY-MM-DD
	ToDate    string      `json:"to_date"`   // YYYY-MM-DD, inclusive
	Days      int         `json:"days"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`
	AppliedOn string      `json:"applied_on"` // YYYY-MM-DD
}
