package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/configs"
	"timetable_backend/internals/features/timetable/suggest/repository"
	"timetable_backend/internals/features/timetable/suggest/service"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   Query endpoints that help a scheduler fill the grid:
   free teachers, free rooms, subject suggestions, and the
   dashboard overview.
   ======================================================= */

type SuggestController struct {
	Ranker   *service.TeacherRanker
	Selector *service.RoomSelector
	Engine   *service.SubjectEngine
	Overview *service.Overview
}

func NewSuggestController(db *gorm.DB) *SuggestController {
	reader := repository.NewGormReader(db)
	policy := configs.Suggestion
	return &SuggestController{
		Ranker:   service.NewTeacherRanker(reader, reader),
		Selector: service.NewRoomSelector(reader, reader, reader, reader, policy),
		Engine:   service.NewSubjectEngine(reader, reader, policy),
		Overview: service.NewOverview(reader, reader, reader),
	}
}

// GET /api/teachers?subject=&day=&unit=
func (ctl *SuggestController) FreeTeachers(c *fiber.Ctx) error {
	subject := strings.TrimSpace(c.Query("subject"))
	dayParam := c.Query("day")
	unitParam := c.Query("unit")

	if subject == "" || dayParam == "" || unitParam == "" {
		return helper.MissingParams(c, "/api/teachers?subject=Maths&day=Mon&unit=2", "subject", "day", "unit")
	}

	day, unit, err := parseSlot(dayParam, unitParam)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	ranked, err := ctl.Ranker.Rank(subject, day, unit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to rank teachers")
	}
	return helper.Success(c, "OK", ranked)
}

// GET /api/rooms?class=&subject=&day=&unit=&teacher=
func (ctl *SuggestController) FreeRooms(c *fiber.Ctx) error {
	subject := strings.TrimSpace(c.Query("subject"))
	dayParam := c.Query("day")
	unitParam := c.Query("unit")
	teacher := strings.TrimSpace(c.Query("teacher"))
	class := strings.TrimSpace(c.Query("class"))

	if subject == "" || dayParam == "" || unitParam == "" || teacher == "" || class == "" {
		return helper.MissingParams(c,
			"/api/rooms?class=7B2&subject=Science&day=Mon&unit=2&teacher=Mrs%20Jones",
			"subject", "day", "unit", "teacher", "class")
	}

	day, unit, err := parseSlot(dayParam, unitParam)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	rooms, err := ctl.Selector.Select(subject, day, unit, teacher, class)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unknown class code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to select rooms")
	}
	return helper.Success(c, "OK", rooms)
}

// GET /api/subjects/:year?day=&unit=&class=
func (ctl *SuggestController) SuggestSubjects(c *fiber.Ctx) error {
	yearParam := strings.TrimSpace(c.Params("year"))
	dayParam := c.Query("day")
	unitParam := c.Query("unit")
	class := strings.TrimSpace(c.Query("class"))

	if dayParam == "" || unitParam == "" || class == "" {
		return helper.MissingParams(c, "/api/subjects/7?day=Mon&unit=5&class=7B2", "day", "unit", "class")
	}

	day, unit, err := parseSlot(dayParam, unitParam)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	yearName := yearParam
	if !strings.HasPrefix(yearName, "Yr") {
		yearName = "Yr" + yearName
	}

	suggestion, err := ctl.Engine.Suggest(yearName, day, unit, class)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found for year group")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to suggest subjects")
	}
	if suggestion.Blocked != nil {
		return helper.Success(c, "Blocked subject in force", suggestion.Blocked)
	}
	return helper.Success(c, "OK", suggestion.Ranked)
}

// GET /api/overview?day=&unit=&subject=
func (ctl *SuggestController) Dashboard(c *fiber.Ctx) error {
	dayParam := c.Query("day")
	unitParam := c.Query("unit")
	subject := strings.TrimSpace(c.Query("subject")) // optional

	if dayParam == "" || unitParam == "" {
		return helper.MissingParams(c, "/api/overview?day=Mon&unit=2", "day", "unit")
	}

	day, unit, err := parseSlot(dayParam, unitParam)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	snapshot, err := ctl.Overview.Snapshot(day, unit, subject)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build overview")
	}
	return helper.Success(c, "OK", snapshot)
}

func parseSlot(dayParam, unitParam string) (timeslotModel.Weekday, timeslotModel.Unit, error) {
	day, ok := timeslotModel.ParseDay(dayParam)
	if !ok {
		return "", "", errors.New("invalid day (want Mon..Fri)")
	}
	unit, ok := timeslotModel.ParseUnit(unitParam)
	if !ok {
		return "", "", errors.New("invalid unit (want 1..5, Unit1..Unit5 or Form)")
	}
	return day, unit, nil
}
