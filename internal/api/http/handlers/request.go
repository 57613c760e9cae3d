package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/auth"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// bindBody decodes the JSON body into req and validates it.
func bindBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return dto.InvalidBody()
	}
	return dto.Validate(req)
}

// bindQuery decodes query parameters into req and validates it.
func bindQuery(c *fiber.Ctx, req any) error {
	if err := c.QueryParser(req); err != nil {
		return apperrors.NewValidationError("Invalid query parameters", nil)
	}
	return dto.Validate(req)
}

// identity returns the caller identity set by the auth gate.
func identity(c *fiber.Ctx) (*domain.Identity, error) {
	id, ok := auth.IdentityFromContext(c)
	if !ok || id == nil {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	return id, nil
}

func items[T any](list []T) fiber.Map {
	return fiber.Map{"items": list}
}

func deleted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Deleted"})
}
