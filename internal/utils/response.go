package utils

import "github.com/gofiber/fiber/v2"

// JSONData wraps a payload in the {success, data} envelope used by every
// read/write endpoint.
func JSONData(c *fiber.Ctx, status int, payload interface{}) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": payload})
}

func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// JSONErrorDetails carries the underlying failure message in a separate
// details field for diagnostics; msg stays generic.
func JSONErrorDetails(c *fiber.Ctx, status int, msg, details string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg, "details": details})
}
