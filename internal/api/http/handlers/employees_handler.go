package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// EmployeesHandler exposes admin employee account management.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs the handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// List handles GET /admin/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}

	views := make([]dto.EmployeeView, 0, len(employees))
	for _, employee := range employees {
		views = append(views, dto.NewEmployeeView(employee))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   views,
	})
}

// Update handles PUT /admin/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid employee id", nil)
	}

	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Email == "" || req.EmployeeNumber == "" {
		return apperrors.NewValidationError("username, email and employee number required", nil)
	}

	if err := h.employees.Update(c.UserContext(), int64(id), req.Username, req.Email, req.EmployeeNumber); err != nil {
		if errors.Is(err, domain.ErrIdentityTaken) {
			return apperrors.NewConflict("email or employee number already in use", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "employee updated",
	})
}

// Delete handles DELETE /admin/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid employee id", nil)
	}

	if err := h.employees.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "employee deleted",
	})
}
