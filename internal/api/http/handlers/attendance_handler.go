package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AttendanceHandler exposes the employee-facing attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendanceService}
}

// Submit handles POST /attendance (multipart form).
func (h *AttendanceHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	photo, err := c.FormFile("photo")
	description := c.FormValue("description")
	status := c.FormValue("status")
	if err != nil || description == "" || status == "" {
		return apperrors.NewValidationError("photo, description and status are required", nil)
	}

	record, err := h.attendance.Submit(c.UserContext(), principal.ID, photo, description, domain.AttendanceStatus(status))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubmitted) {
			return apperrors.NewConflict("already submitted today", nil)
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "attendance recorded",
		"attendance": dto.NewAttendanceView(*record),
	})
}

// List handles GET /attendance, returning the caller's own records.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	records, err := h.attendance.ListForEmployee(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}

	views := make([]dto.AttendanceView, 0, len(records))
	for _, record := range records {
		views = append(views, dto.NewAttendanceView(record))
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"attendances": views,
	})
}
