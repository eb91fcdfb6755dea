package route

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepository "timetable_backend/internals/features/users/auth/repository"
	userRoutes "timetable_backend/internals/features/users/auth/route"
	authMiddleware "timetable_backend/internals/middlewares/auth"
	"timetable_backend/internals/route/details"
)

/* =======================================================
   ROUTE INDEX
   /api/auth : public auth surface (login, register, refresh)
   /api      : authenticated reads + suggestion endpoints
   /api/a    : entity administration; reads need a login,
               writes need the staff flag
   ======================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	userRoutes.AuthRoutes(app, db)

	repo := authRepository.NewAuthRepository(db)
	requireAuth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		BlacklistChecker:    repo.IsTokenBlacklisted,
		AllowCookieFallback: true,
	})

	api := app.Group("/api", requireAuth)
	details.TimetableRoutes(api, db, v)

	admin := api.Group("/a")
	details.AdminRoutes(admin, db, v)
}
