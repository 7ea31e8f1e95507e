package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AuthHandler exposes login and signup endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	admin, token, _, err := h.auth.LoginAdmin(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid email or password")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "admin login successful",
		"token":   token,
		"admin":   dto.AdminView{ID: admin.ID, Email: admin.Email},
	})
}

// EmployeeLogin handles POST /auth/employees/login.
func (h *AuthHandler) EmployeeLogin(c *fiber.Ctx) error {
	var req dto.EmployeeLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.EmployeeNumber == "" {
		return apperrors.NewValidationError("email, password and employee number required", nil)
	}

	employee, token, _, err := h.auth.LoginEmployee(c.UserContext(), req.Email, req.Password, req.EmployeeNumber)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid email, password or employee number")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user": dto.EmployeeIdentityView{
			ID:             employee.ID,
			Email:          employee.Email,
			Username:       employee.Username,
			EmployeeNumber: employee.EmployeeNumber,
		},
	})
}

// Signup handles POST /auth/employees/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Username == "" || req.Password == "" || req.EmployeeNumber == "" || req.AdminCode == "" {
		return apperrors.NewValidationError("all fields are required", nil)
	}

	_, err := h.auth.RegisterEmployee(c.UserContext(), service.RegisterInput{
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		EmployeeNumber: req.EmployeeNumber,
		AdminCode:      req.AdminCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			return apperrors.NewValidationError(err.Error(), nil)
		case errors.Is(err, domain.ErrInvalidInviteCode):
			return apperrors.NewValidationError("invalid admin code", nil)
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrEmployeeNumberTaken):
			return apperrors.NewConflict(err.Error(), nil)
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "account created",
	})
}
