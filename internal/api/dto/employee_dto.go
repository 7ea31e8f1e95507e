package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// EmployeeUpdateRequest payload for admin employee edits.
type EmployeeUpdateRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	EmployeeNumber string `json:"employee_number"`
}

// EmployeeView is the admin-facing account representation.
type EmployeeView struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	EmployeeNumber string    `json:"employee_number"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewEmployeeView maps a domain employee.
func NewEmployeeView(employee domain.Employee) EmployeeView {
	return EmployeeView{
		ID:             employee.ID,
		Email:          employee.Email,
		Username:       employee.Username,
		EmployeeNumber: employee.EmployeeNumber,
		CreatedAt:      employee.CreatedAt,
	}
}
