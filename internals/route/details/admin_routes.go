package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomRoute "timetable_backend/internals/features/timetable/rooms/route"
	subjectRoute "timetable_backend/internals/features/timetable/subjects/route"
	teacherRoute "timetable_backend/internals/features/timetable/teachers/route"
	yearRoute "timetable_backend/internals/features/timetable/years/route"
)

// AdminRoutes mounts the entity CRUD under /api/a. Reads are open to any
// authenticated user; each feature gates its writes behind the staff flag.
func AdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	roomRoute.RoomAdminRoutes(admin, db, v)
	teacherRoute.TeacherAdminRoutes(admin, db, v)
	subjectRoute.SubjectAdminRoutes(admin, db, v)
	yearRoute.YearAdminRoutes(admin, db, v)
}
