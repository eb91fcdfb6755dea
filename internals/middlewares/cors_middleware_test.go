package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func corsApp() *fiber.App {
	app := fiber.New()
	app.Use(CorsMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestCorsOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://timetable.example.org")
	app := corsApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://timetable.example.org")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "https://timetable.example.org",
		resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://elsewhere.example.org")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestCorsDefaultsToLocalDevOrigins(t *testing.T) {
	app := corsApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5173",
		resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
