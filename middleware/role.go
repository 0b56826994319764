package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/home-services-app/db"
	"github.com/meinhoongagan/home-services-app/models"
	"github.com/meinhoongagan/home-services-app/utils"
)

// RequireRole rejects callers whose stored role does not match. The user is
// re-read from the database so that a role claim in a stale token cannot
// outlive moderation: deactivated accounts are refused here regardless of
// what the token says.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "User ID not found in context")
		}

		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.ErrUnauthenticated, "User not found")
		}

		if !user.IsActive {
			return utils.Fail(c, fiber.StatusForbidden, utils.ErrForbidden, "Your account has been deactivated")
		}

		if user.Role != roleName {
			return utils.Fail(c, fiber.StatusForbidden, utils.ErrForbidden, "You don't have the required role to perform this action")
		}

		return c.Next()
	}
}
