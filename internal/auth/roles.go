package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// RequireRole ensures the authenticated identity holds one of the allowed roles.
// It must be mounted after AuthMiddleware.Handle.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok || identity == nil {
			return apperrors.NewUnauthorized("Unauthorized")
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("Access denied: Admin only")
		}
		return c.Next()
	}
}

// RequireAdmin is RequireRole(domain.RoleAdmin).
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
