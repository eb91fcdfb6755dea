package middleware

import (
	"github.com/gofiber/fiber/v2"

	helper "timetable_backend/internals/helpers"
)

// RequireStaff gates write endpoints on the is_staff claim.
// Runs after AuthJWT so the claim is already in locals.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsStaff(c) {
			return fiber.NewError(fiber.StatusForbidden, "Staff privilege required")
		}
		return c.Next()
	}
}
