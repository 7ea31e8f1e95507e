package domain

import "time"

// Employee models a staff account that submits daily attendance.
// EmployeeNumber is the NIP shown on badges; it is semi-public, which is
// why login requires it alongside email and password.
type Employee struct {
	ID             int64
	Email          string
	Username       string
	EmployeeNumber string
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
