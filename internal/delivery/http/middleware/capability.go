package middleware

import (
	"jobboard/internal/access"

	"github.com/gofiber/fiber/v3"
)

// RequireCapability rejects callers whose role lacks capability. It must run
// after AuthMiddleware.
func RequireCapability(policy access.Policy, capability access.Capability) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := Role(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if policy == nil || !policy.Can(role, capability) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}
