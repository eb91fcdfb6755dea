package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/years/controller"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

// YearAdminRoutes registers the CRUD for year groups and class groups.
// Writes are staff-only.
func YearAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	staff := authMiddleware.RequireStaff()

	years := controller.NewYearController(db, v)
	y := admin.Group("/years")
	y.Post("/", staff, years.Create)
	y.Delete("/:year", staff, years.Delete)

	classes := controller.NewClassGroupController(db, v)
	g := admin.Group("/classes")
	g.Get("/", classes.List)
	g.Get("/:id", classes.GetByID)
	g.Post("/", staff, classes.Create)
	g.Put("/:id", staff, classes.Update)
	g.Delete("/:id", staff, classes.Delete)
}
