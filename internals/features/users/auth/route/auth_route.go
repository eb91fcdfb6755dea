package route

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/users/auth/controller"
	"timetable_backend/internals/features/users/auth/repository"
	middlewares "timetable_backend/internals/middlewares"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)
	repo := repository.NewAuthRepository(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	protected := baseAuth.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			BlacklistChecker:    repo.IsTokenBlacklisted,
			AllowCookieFallback: true,
		}),
	)
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
