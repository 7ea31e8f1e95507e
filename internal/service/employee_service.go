package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// EmployeeService exposes administrative account management.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// List returns every employee account, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Update edits username, email and employee number. Email and number
// must not collide with any other employee.
func (s *EmployeeService) Update(ctx context.Context, id int64, username, email, employeeNumber string) error {
	taken, err := s.employees.OtherWithEmailOrNumber(ctx, id, email, employeeNumber)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrIdentityTaken
	}

	employee := &domain.Employee{
		ID:             id,
		Username:       username,
		Email:          email,
		EmployeeNumber: employeeNumber,
	}
	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		// The pre-check above races with concurrent edits; the column
		// constraints have the final say.
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrEmployeeNumberTaken) {
			return domain.ErrIdentityTaken
		}
		return err
	}
	return nil
}

// Delete removes the account; the employee's attendance rows cascade.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
