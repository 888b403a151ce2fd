package model

// Attendance status values.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
)

// AttendanceRecord is one day of attendance for one user. Records are
// display-only in this system: the punch clock toggles session state
// and never writes back here.
type AttendanceRecord struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	WorkHours *string `json:"work_hours"`
	Status    string  `json:"status"`
}
