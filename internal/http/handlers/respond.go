package handlers

import "github.com/gofiber/fiber/v2"

// failJSON is the {success:false, errors:...} shape the storefront checks
// before it ever looks at the HTTP status.
func failJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "errors": msg})
}
