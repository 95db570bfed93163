package handlers

import (
	applog "stylebay/internal/log"
	"stylebay/internal/token"

	"github.com/gofiber/fiber/v2"
)

// RequireUser guards the cart routes. The caller supplies the signed token
// in the auth-token header; on success the user id lands in Locals.
func RequireUser(tokens *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("auth-token")
		if raw == "" {
			applog.Security(c, "auth.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": "Please authenticate using valid token",
			})
		}
		uid, err := tokens.Verify(raw)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": "Please Authenticate using a Valid Token",
			})
		}
		c.Locals("userID", uid)
		return c.Next()
	}
}
