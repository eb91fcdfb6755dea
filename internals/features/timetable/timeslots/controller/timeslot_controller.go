package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "timetable_backend/internals/features/timetable/rooms/model"
	subjectModel "timetable_backend/internals/features/timetable/subjects/model"
	teacherModel "timetable_backend/internals/features/timetable/teachers/model"
	"timetable_backend/internals/features/timetable/timeslots/dto"
	"timetable_backend/internals/features/timetable/timeslots/model"
	yearModel "timetable_backend/internals/features/timetable/years/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TimeslotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeslotController(db *gorm.DB) *TimeslotController {
	return &TimeslotController{DB: db, Validate: validator.New()}
}

const resolvedSelect = `timeslots.timeslot_id AS id,
	timeslots.timeslot_day AS day,
	timeslots.timeslot_unit AS unit,
	teachers.teacher_name AS teacher,
	rooms.room_number AS room,
	subjects.subject_name AS subject,
	class_groups.class_group_code AS class_group`

func (ctl *TimeslotController) resolvedQuery() *gorm.DB {
	return ctl.DB.Table("timeslots").
		Select(resolvedSelect).
		Joins("JOIN teachers ON teachers.teacher_id = timeslots.timeslot_teacher_id").
		Joins("JOIN rooms ON rooms.room_id = timeslots.timeslot_room_id").
		Joins("JOIN subjects ON subjects.subject_id = timeslots.timeslot_subject_id").
		Joins("JOIN class_groups ON class_groups.class_group_id = timeslots.timeslot_class_group_id")
}

// GET /api/timeslots: every lesson on the grid, names resolved.
func (ctl *TimeslotController) List(c *fiber.Ctx) error {
	var rows []dto.TimeslotResponse
	if err := ctl.resolvedQuery().
		Order("timeslots.timeslot_day ASC, timeslots.timeslot_unit ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslots")
	}
	return helper.Success(c, "OK", rows)
}

// GET /api/timeslots/:classCode?unit=&day=: one class's lesson at a slot.
func (ctl *TimeslotController) Retrieve(c *fiber.Ctx) error {
	classCode := strings.TrimSpace(c.Params("classCode"))
	dayParam := c.Query("day")
	unitParam := c.Query("unit")

	if dayParam == "" || unitParam == "" {
		return helper.MissingParams(c, "/api/timeslots/7B2?unit=2&day=Mon", "day", "unit")
	}

	day, ok := model.ParseDay(dayParam)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day (want Mon..Fri)")
	}
	unit, ok := model.ParseUnit(unitParam)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid unit (want 1..5, Unit1..Unit5 or Form)")
	}

	var row dto.TimeslotResponse
	result := ctl.resolvedQuery().
		Where("class_groups.class_group_code = ? AND timeslots.timeslot_day = ? AND timeslots.timeslot_unit = ?",
			classCode, day, unit).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslot")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "No timeslot for that class at that slot")
	}
	return helper.Success(c, "OK", row)
}

// POST /api/timeslots: staff only. Resolves every name to an id
// before insert; any unknown name is a 404, not a fault.
func (ctl *TimeslotController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeslotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	unit, ok := model.ParseUnit(req.Unit)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid unit (want 1..5, Unit1..Unit5 or Form)")
	}

	classCode := strings.TrimSpace(req.ClassGroup)
	if classCode == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class code")
	}
	// the year group is encoded in the first rune of the class code: "7B2" → Yr7
	yearGroupName := "Yr" + classCode[:1]

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.Where("teacher_name = ?", strings.TrimSpace(req.Teacher)).First(&teacher).Error; err != nil {
		return notFoundOr500(c, err, "Unknown teacher")
	}

	var room roomModel.RoomModel
	if err := ctl.DB.Where("room_number = ?", strings.TrimSpace(req.Room)).First(&room).Error; err != nil {
		return notFoundOr500(c, err, "Unknown room")
	}

	var subject subjectModel.SubjectModel
	if err := ctl.DB.
		Joins("JOIN year_groups ON year_groups.year_group_id = subjects.subject_year_group_id").
		Where("subjects.subject_name = ? AND year_groups.year_group_name = ?", strings.TrimSpace(req.Subject), yearGroupName).
		First(&subject).Error; err != nil {
		return notFoundOr500(c, err, "Unknown subject for that year group")
	}

	var class yearModel.ClassGroupModel
	if err := ctl.DB.Where("class_group_code = ?", classCode).First(&class).Error; err != nil {
		return notFoundOr500(c, err, "Unknown class group")
	}

	slot := model.TimeslotModel{
		TimeslotDay:          model.Weekday(req.Day),
		TimeslotUnit:         unit,
		TimeslotTeacherID:    teacher.TeacherID,
		TimeslotRoomID:       room.RoomID,
		TimeslotSubjectID:    subject.SubjectID,
		TimeslotClassGroupID: class.ClassGroupID,
	}
	if err := ctl.DB.Create(&slot).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timeslot")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timeslot created", dto.TimeslotResponse{
		ID:         slot.TimeslotID,
		Day:        string(slot.TimeslotDay),
		Unit:       string(slot.TimeslotUnit),
		Teacher:    teacher.TeacherName,
		Room:       room.RoomNumber,
		Subject:    subject.SubjectName,
		ClassGroup: class.ClassGroupCode,
	})
}

// DELETE /api/timeslots/:id: staff only.
func (ctl *TimeslotController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Where("timeslot_id = ?", id).Delete(&model.TimeslotModel{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete timeslot")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Timeslot not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func notFoundOr500(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, msg)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Lookup failed")
}
