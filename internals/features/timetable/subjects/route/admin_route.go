package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/subjects/controller"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

// SubjectAdminRoutes registers the CRUD for subjects. Writes are staff-only.
func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	staff := authMiddleware.RequireStaff()

	subjects := controller.NewSubjectController(db, v)
	g := admin.Group("/subjects")
	g.Get("/", subjects.List)
	g.Get("/:id", subjects.GetByID)
	g.Post("/", staff, subjects.Create)
	g.Put("/:id", staff, subjects.Update)
	g.Delete("/:id", staff, subjects.Delete)
}
