package store

import (
	"time"

	"go-dayflow-hrms/internal/model"
)

// Seed dataset for the Dayflow organization. Attendance dates are
// generated relative to the process start so "today" rows exist.

func dateDaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func str(s string) *string { return &s }

func SeedUsers() []model.User {
	return []model.User{
		{
			ID: "u1", Name: "Sarah Mitchell", Email: "sarah.mitchell@dayflow.com", Role: model.RoleAdmin,
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=face",
			Phone:      "+1 (555) 123-4567",
			Address:    "123 Corporate Lane, Suite 500, San Francisco, CA 94102",
			EmployeeID: "DF001", JobTitle: "HR Manager", Department: "Human Resources",
		},
		{
			ID: "u2", Name: "James Wilson", Email: "james.wilson@dayflow.com", Role: model.RoleEmployee,
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Phone:      "+1 (555) 234-5678",
			Address:    "456 Tech Boulevard, Apt 12B, San Francisco, CA 94103",
			EmployeeID: "DF002", JobTitle: "Software Engineer", Department: "Engineering",
		},
		{
			ID: "u3", Name: "Emily Chen", Email: "emily.chen@dayflow.com", Role: model.RoleEmployee,
			Avatar:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Phone:      "+1 (555) 345-6789",
			Address:    "789 Innovation Drive, San Francisco, CA 94104",
			EmployeeID: "DF003", JobTitle: "Product Designer", Department: "Design",
		},
		{
			ID: "u4", Name: "Michael Brown", Email: "michael.brown@dayflow.com", Role: model.RoleEmployee,
			Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Phone:      "+1 (555) 456-7890",
			Address:    "321 Market Street, Floor 8, San Francisco, CA 94105",
			EmployeeID: "DF004", JobTitle: "Marketing Specialist", Department: "Marketing",
		},
		{
			ID: "u5", Name: "Lisa Rodriguez", Email: "lisa.rodriguez@dayflow.com", Role: model.RoleEmployee,
			Avatar:     "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=face",
			Phone:      "+1 (555) 567-8901",
			Address:    "654 Financial District, San Francisco, CA 94106",
			EmployeeID: "DF005", JobTitle: "Financial Analyst", Department: "Finance",
		},
	}
}

func SeedAttendance() []model.AttendanceRecord {
	return []model.AttendanceRecord{
		// James Wilson
		{ID: "a1", UserID: "u2", Date: dateDaysAgo(0), CheckIn: str("09:05"), Status: model.AttendancePresent},
		{ID: "a2", UserID: "u2", Date: dateDaysAgo(1), CheckIn: str("08:55"), CheckOut: str("18:10"), WorkHours: str("9h 15m"), Status: model.AttendancePresent},
		{ID: "a3", UserID: "u2", Date: dateDaysAgo(2), CheckIn: str("09:30"), CheckOut: str("14:00"), WorkHours: str("4h 30m"), Status: model.AttendanceHalfDay},
		{ID: "a4", UserID: "u2", Date: dateDaysAgo(3), CheckIn: str("09:00"), CheckOut: str("18:00"), WorkHours: str("9h 0m"), Status: model.AttendancePresent},
		{ID: "a5", UserID: "u2", Date: dateDaysAgo(4), Status: model.AttendanceAbsent},
		{ID: "a6", UserID: "u2", Date: dateDaysAgo(5), CheckIn: str("08:45"), CheckOut: str("17:45"), WorkHours: str("9h 0m"), Status: model.AttendancePresent},
		{ID: "a7", UserID: "u2", Date: dateDaysAgo(6), CheckIn: str("09:10"), CheckOut: str("18:30"), WorkHours: str("9h 20m"), Status: model.AttendancePresent},
		// Emily Chen
		{ID: "a8", UserID: "u3", Date: dateDaysAgo(0), CheckIn: str("08:50"), Status: model.AttendancePresent},
		{ID: "a9", UserID: "u3", Date: dateDaysAgo(1), CheckIn: str("09:00"), CheckOut: str("17:30"), WorkHours: str("8h 30m"), Status: model.AttendancePresent},
		{ID: "a10", UserID: "u3", Date: dateDaysAgo(2), CheckIn: str("09:15"), CheckOut: str("18:00"), WorkHours: str("8h 45m"), Status: model.AttendancePresent},
		{ID: "a11", UserID: "u3", Date: dateDaysAgo(3), Status: model.AttendanceAbsent},
		{ID: "a12", UserID: "u3", Date: dateDaysAgo(4), CheckIn: str("08:30"), CheckOut: str("17:00"), WorkHours: str("8h 30m"), Status: model.AttendancePresent},
		{ID: "a13", UserID: "u3", Date: dateDaysAgo(5), CheckIn: str("09:00"), CheckOut: str("13:30"), WorkHours: str("4h 30m"), Status: model.AttendanceHalfDay},
		{ID: "a14", UserID: "u3", Date: dateDaysAgo(6), CheckIn: str("08:45"), CheckOut: str("17:45"), WorkHours: str("9h 0m"), Status: model.AttendancePresent},
	}
}

func SeedSalaries() map[string]model.SalaryStructure {
	return map[string]model.SalaryStructure{
		"u1": {Basic: 75000, HRA: 30000, Special: 10000, PF: 2700, Tax: 500},
		"u2": {Basic: 60000, HRA: 24000, Special: 8000, PF: 2160, Tax: 400},
		"u3": {Basic: 55000, HRA: 22000, Special: 7000, PF: 1980, Tax: 350},
		"u4": {Basic: 50000, HRA: 20000, Special: 5000, PF: 1800, Tax: 200},
		"u5": {Basic: 65000, HRA: 26000, Special: 9000, PF: 2340, Tax: 450},
	}
}

func SeedLeaves() []model.LeaveRequest {
	return []model.LeaveRequest{
		{ID: "l1", UserID: "u2", Type: model.LeaveTypeSick, FromDate: "2026-01-06", ToDate: "2026-01-07", Days: 2, Reason: "Fever and flu symptoms", Status: model.LeavePending, AppliedOn: "2026-01-02"},
		{ID: "l2", UserID: "u3", Type: model.LeaveTypeCasual, FromDate: "2026-01-10", ToDate: "2026-01-10", Days: 1, Reason: "Personal appointment", Status: model.LeaveApproved, AppliedOn: "2025-12-28"},
		{ID: "l3", UserID: "u4", Type: model.LeaveTypeEarned, FromDate: "2026-01-15", ToDate: "2026-01-20", Days: 6, Reason: "Family vacation", Status: model.LeavePending, AppliedOn: "2026-01-01"},
		{ID: "l4", UserID: "u5", Type: model.LeaveTypeSick, FromDate: "2025-12-20", ToDate: "2025-12-21", Days: 2, Reason: "Doctor appointment and recovery", Status: model.LeaveApproved, AppliedOn: "2025-12-18"},
		{ID: "l5", UserID: "u2", Type: model.LeaveTypeCasual, FromDate: "2025-12-25", ToDate: "2025-12-26", Days: 2, Reason: "Holiday travel", Status: model.LeaveRejected, AppliedOn: "2025-12-15"},
	}
}
