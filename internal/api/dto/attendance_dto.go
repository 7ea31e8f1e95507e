package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// AttendanceUpdateRequest payload for admin record edits.
type AttendanceUpdateRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AttendanceView is an employee-facing record representation.
type AttendanceView struct {
	ID          int64     `json:"id"`
	PhotoFile   string    `json:"photo_file"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminAttendanceView adds the employee identity fields admins see.
type AdminAttendanceView struct {
	AttendanceView
	EmployeeID     int64  `json:"employee_id"`
	Username       string `json:"username"`
	EmployeeNumber string `json:"employee_number"`
	Email          string `json:"email"`
}

// NewAttendanceView maps a domain record.
func NewAttendanceView(record domain.AttendanceRecord) AttendanceView {
	return AttendanceView{
		ID:          record.ID,
		PhotoFile:   record.PhotoFile,
		Description: record.Description,
		Status:      string(record.Status),
		Date:        record.Date.Format("2006-01-02"),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// NewAdminAttendanceView maps a joined row.
func NewAdminAttendanceView(row domain.AttendanceWithEmployee) AdminAttendanceView {
	return AdminAttendanceView{
		AttendanceView: NewAttendanceView(row.AttendanceRecord),
		EmployeeID:     row.EmployeeID,
		Username:       row.Username,
		EmployeeNumber: row.EmployeeNumber,
		Email:          row.Email,
	}
}
