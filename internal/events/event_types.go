package events

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAttendanceSubmitted EventType = "attendance_submitted"
	EventAttendanceUpdated   EventType = "attendance_updated"
	EventAttendanceDeleted   EventType = "attendance_deleted"
	EventEmployeeRegistered  EventType = "employee_registered"
)

// Actor encapsulates who triggered an event.
type Actor struct {
	Role      domain.Role `json:"role"`
	SubjectID int64       `json:"subject_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AttendanceSubmittedPayload payload.
type AttendanceSubmittedPayload struct {
	RecordID   int64                   `json:"record_id"`
	EmployeeID int64                   `json:"employee_id"`
	Status     domain.AttendanceStatus `json:"status"`
	Date       string                  `json:"date"`
}

// AttendanceUpdatedPayload payload.
type AttendanceUpdatedPayload struct {
	RecordID  int64                   `json:"record_id"`
	NewStatus domain.AttendanceStatus `json:"new_status"`
}

// AttendanceDeletedPayload payload.
type AttendanceDeletedPayload struct {
	RecordID int64 `json:"record_id"`
}

// EmployeeRegisteredPayload payload.
type EmployeeRegisteredPayload struct {
	EmployeeID     int64  `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
}
