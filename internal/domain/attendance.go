package domain

import "time"

// AttendanceStatus enumerates the accepted daily statuses.
type AttendanceStatus string

const (
	StatusHadir AttendanceStatus = "Hadir"
	StatusIzin  AttendanceStatus = "Izin"
)

// Valid reports whether the status is one of the accepted values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusHadir, StatusIzin:
		return true
	}
	return false
}

// AttendanceRecord is one employee's submission for one calendar day.
// At most one record may exist per (EmployeeID, Date); the database
// enforces this with a unique index.
type AttendanceRecord struct {
	ID          int64
	EmployeeID  int64
	PhotoFile   string
	Description string
	Status      AttendanceStatus
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AttendanceWithEmployee joins a record with the identity fields admins
// see in listings and exports.
type AttendanceWithEmployee struct {
	AttendanceRecord
	Username       string
	EmployeeNumber string
	Email          string
}
