package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/http/handlers"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Attendance      *handlers.AttendanceHandler
	AdminAttendance *handlers.AdminAttendanceHandler
	Employees       *handlers.EmployeesHandler
	Stats           *handlers.StatsHandler
	AuthMiddleware  *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)
	authGroup.Post("/employees/login", cfg.Auth.EmployeeLogin)
	authGroup.Post("/employees/signup", cfg.Auth.Signup)

	attendance := app.Group("/attendance", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleEmployee))
	attendance.Post("/", cfg.Attendance.Submit)
	attendance.Get("/", cfg.Attendance.List)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/attendance", cfg.AdminAttendance.List)
	admin.Put("/attendance/:id", cfg.AdminAttendance.Update)
	admin.Delete("/attendance/:id", cfg.AdminAttendance.Delete)
	admin.Get("/employees", cfg.Employees.List)
	admin.Put("/employees/:id", cfg.Employees.Update)
	admin.Delete("/employees/:id", cfg.Employees.Delete)
	admin.Get("/stats", cfg.Stats.Get)
	admin.Get("/export", cfg.AdminAttendance.Export)
}
