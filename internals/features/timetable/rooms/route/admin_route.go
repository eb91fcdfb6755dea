package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/rooms/controller"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

// RoomAdminRoutes registers the CRUD for rooms and blocks. Writes are
// staff-only.
func RoomAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	staff := authMiddleware.RequireStaff()

	rooms := controller.NewRoomController(db, v)
	g := admin.Group("/rooms")
	g.Get("/", rooms.List)
	g.Get("/:id", rooms.GetByID)
	g.Post("/", staff, rooms.Create)
	g.Put("/:id", staff, rooms.Update)
	g.Delete("/:id", staff, rooms.Delete)

	blocks := controller.NewBlockController(db, v)
	b := admin.Group("/blocks")
	b.Get("/", blocks.List)
	b.Post("/", staff, blocks.Create)
	b.Delete("/:id", staff, blocks.Delete)
}
