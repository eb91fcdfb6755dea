package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/teachers/controller"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

// TeacherAdminRoutes registers the CRUD for teachers. Writes are staff-only.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	staff := authMiddleware.RequireStaff()

	teachers := controller.NewTeacherController(db, v)
	g := admin.Group("/teachers")
	g.Get("/", teachers.List)
	g.Get("/:id", teachers.GetByID)
	g.Post("/", staff, teachers.Create)
	g.Put("/:id", staff, teachers.Update)
	g.Delete("/:id", staff, teachers.Delete)
}
