package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"timetable_backend/internals/configs"
)

const defaultAllowOrigins = "http://localhost:5173, http://127.0.0.1:5500"

// CorsMiddleware builds the CORS middleware. Allowed origins come from
// CORS_ALLOW_ORIGINS (comma-separated), with local dev defaults.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.GetEnv("CORS_ALLOW_ORIGINS", defaultAllowOrigins),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
