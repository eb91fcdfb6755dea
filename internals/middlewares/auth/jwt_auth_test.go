package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, staff bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       "8d7c9a7e-13a1-4f41-a1a1-2b9a6c1d0e11",
		"is_staff": staff,
		"typ":      "access",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func testApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/p", AuthJWT(AuthJWTOpts{Secret: testSecret}))
	protected.Get("/read", func(c *fiber.Ctx) error { return c.SendString("ok") })
	protected.Post("/write", RequireStaff(), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/p/read", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsBadToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/p/read", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTAcceptsValidToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/p/read", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, false))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWTRejectsRevokedToken(t *testing.T) {
	app := fiber.New()
	app.Get("/p", AuthJWT(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return true, nil },
	}), func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, true))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireStaff(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/p/write", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, false))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("POST", "/p/write", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, true))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
