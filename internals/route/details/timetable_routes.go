package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "timetable_backend/internals/features/timetable/subjects/controller"
	suggestController "timetable_backend/internals/features/timetable/suggest/controller"
	timeslotController "timetable_backend/internals/features/timetable/timeslots/controller"
	yearController "timetable_backend/internals/features/timetable/years/controller"
	authMiddleware "timetable_backend/internals/middlewares/auth"
)

// TimetableRoutes mounts the authenticated read surface: the grid,
// the suggestion endpoints and the year overview. Timeslot writes sit
// here too but behind the staff gate.
func TimetableRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	suggest := suggestController.NewSuggestController(db)
	api.Get("/teachers", suggest.FreeTeachers)
	api.Get("/rooms", suggest.FreeRooms)
	api.Get("/subjects/:year", suggest.SuggestSubjects)
	api.Get("/overview", suggest.Dashboard)

	subjects := subjectController.NewSubjectController(db, v)
	api.Get("/subjects", subjects.Names)

	years := yearController.NewYearController(db, v)
	api.Get("/year", years.Names)
	api.Get("/year/:year", years.Detail)

	slots := timeslotController.NewTimeslotController(db)
	api.Get("/timeslots", slots.List)
	api.Get("/timeslots/:classCode", slots.Retrieve)

	staff := authMiddleware.RequireStaff()
	api.Post("/timeslots", staff, slots.Create)
	api.Delete("/timeslots/:id", staff, slots.Delete)
}
