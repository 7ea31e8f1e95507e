package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AdminAttendanceHandler exposes admin record operations and the export.
type AdminAttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAdminAttendanceHandler constructs the handler.
func NewAdminAttendanceHandler(attendanceService *service.AttendanceService) *AdminAttendanceHandler {
	return &AdminAttendanceHandler{attendance: attendanceService}
}

// List handles GET /admin/attendance.
func (h *AdminAttendanceHandler) List(c *fiber.Ctx) error {
	rows, err := h.attendance.ListAll(c.UserContext())
	if err != nil {
		return err
	}

	views := make([]dto.AdminAttendanceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.NewAdminAttendanceView(row))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": views,
	})
}

// Update handles PUT /admin/attendance/:id.
func (h *AdminAttendanceHandler) Update(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid record id", nil)
	}

	var req dto.AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Description == "" || req.Status == "" {
		return apperrors.NewValidationError("description and status required", nil)
	}

	if err := h.attendance.UpdateRecord(c.UserContext(), principal.ID, int64(id), req.Description, domain.AttendanceStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "attendance record updated",
	})
}

// Delete handles DELETE /admin/attendance/:id.
func (h *AdminAttendanceHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid record id", nil)
	}

	if err := h.attendance.DeleteRecord(c.UserContext(), principal.ID, int64(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "attendance record deleted",
	})
}

// Export handles GET /admin/export, returning a CSV attachment.
func (h *AdminAttendanceHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	count, err := h.attendance.ExportCSV(c.UserContext(), &buf)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NewNotFound("attendance data", nil)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+h.attendance.ExportFilename())
	return c.Send(buf.Bytes())
}
