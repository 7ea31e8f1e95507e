package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// RequireRole ensures the principal carries the required role. Role is
// the entire authorization model: two flat roles, no resource ACLs, so
// a mismatch is a 401 like any other failed authorization.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		switch principal.Role {
		case required:
			return c.Next()
		case domain.RoleAdmin, domain.RoleEmployee:
			return apperrors.NewUnauthorized("insufficient role")
		default:
			return apperrors.NewUnauthorized("unknown role")
		}
	}
}
