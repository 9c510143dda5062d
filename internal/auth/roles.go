package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// RequireAdmin ensures the caller holds the admin role. Rejections use a
// proper 403 rather than the success-envelope-with-error-message style of
// earlier deployments.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("token is missing")
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("invalid permissions")
		}
		return c.Next()
	}
}
