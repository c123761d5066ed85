package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/models"
)

// RequireRole restricts a route to the listed staff roles. The role claim is
// set by Protected(); this must run after it.
func RequireRole(roles ...models.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		for _, allowed := range roles {
			if models.StaffRole(role) == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
