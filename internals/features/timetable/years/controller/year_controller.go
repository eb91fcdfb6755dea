package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timeslotDTO "timetable_backend/internals/features/timetable/timeslots/dto"
	"timetable_backend/internals/features/timetable/years/dto"
	"timetable_backend/internals/features/timetable/years/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER: year groups
   ======================================================= */

type YearController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewYearController(db *gorm.DB, v *validator.Validate) *YearController {
	return &YearController{DB: db, Validate: v}
}

// Names returns every year-group name, ordered: ["Yr7", "Yr8", ...].
func (ctl *YearController) Names(c *fiber.Ctx) error {
	var names []string
	err := ctl.DB.Model(&model.YearGroupModel{}).
		Order("year_group_name ASC").
		Pluck("year_group_name", &names).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch year groups")
	}
	return helper.Success(c, "OK", names)
}

// Detail returns one year group with its classes and every timeslot
// scheduled for them.
func (ctl *YearController) Detail(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid year number")
	}

	var yg model.YearGroupModel
	if err := ctl.DB.Where("year_group_name = ?", model.YearGroupNameFor(year)).First(&yg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Year group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch year group")
	}

	var classes []model.ClassGroupModel
	err = ctl.DB.Model(&model.ClassGroupModel{}).
		Joins("JOIN year_group_classes ON year_group_classes.year_group_class_class_group_id = class_groups.class_group_id").
		Where("year_group_classes.year_group_class_year_group_id = ?", yg.YearGroupID).
		Order("class_groups.class_group_code ASC").
		Find(&classes).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	outClasses := make([]dto.ClassGroupResponse, 0, len(classes))
	for _, cg := range classes {
		names, err := classSubjectNames(ctl.DB, cg)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve class subjects")
		}
		outClasses = append(outClasses, dto.ToClassGroupResponse(cg, names))
	}

	var slots []timeslotDTO.TimeslotResponse
	err = ctl.DB.Table("timeslots").
		Select(`timeslots.timeslot_id AS id,
			timeslots.timeslot_day AS day,
			timeslots.timeslot_unit AS unit,
			teachers.teacher_name AS teacher,
			rooms.room_number AS room,
			subjects.subject_name AS subject,
			class_groups.class_group_code AS class_group`).
		Joins("JOIN teachers ON teachers.teacher_id = timeslots.timeslot_teacher_id").
		Joins("JOIN rooms ON rooms.room_id = timeslots.timeslot_room_id").
		Joins("JOIN subjects ON subjects.subject_id = timeslots.timeslot_subject_id").
		Joins("JOIN class_groups ON class_groups.class_group_id = timeslots.timeslot_class_group_id").
		Joins("JOIN year_group_classes ON year_group_classes.year_group_class_class_group_id = class_groups.class_group_id").
		Where("year_group_classes.year_group_class_year_group_id = ?", yg.YearGroupID).
		Order("timeslots.timeslot_day ASC, timeslots.timeslot_unit ASC").
		Scan(&slots).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timeslots")
	}
	if slots == nil {
		slots = []timeslotDTO.TimeslotResponse{}
	}

	return helper.Success(c, "OK", dto.YearDetailResponse{
		YearGroupName: yg.YearGroupName,
		Classes:       outClasses,
		Timeslots:     slots,
	})
}

// Create registers a new year group by number.
func (ctl *YearController) Create(c *fiber.Ctx) error {
	var req dto.CreateYearGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.YearGroupModel{YearGroupName: model.YearGroupNameFor(req.Year)}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Year group already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create year group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Year group created", m)
}

// Delete removes a year group and its class membership rows. Classes
// themselves survive; they can be reattached elsewhere.
func (ctl *YearController) Delete(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid year number")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var yg model.YearGroupModel
		if err := tx.Where("year_group_name = ?", model.YearGroupNameFor(year)).First(&yg).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM year_group_classes WHERE year_group_class_year_group_id = ?", yg.YearGroupID).Error; err != nil {
			return err
		}
		return tx.Where("year_group_id = ?", yg.YearGroupID).Delete(&model.YearGroupModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Year group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete year group")
	}
	return helper.Success(c, "Year group deleted", fiber.Map{"deleted": true})
}

func classSubjectNames(db *gorm.DB, cg model.ClassGroupModel) ([]string, error) {
	var names []string
	err := db.Table("class_group_subjects").
		Joins("JOIN subjects ON subjects.subject_id = class_group_subjects.class_group_subject_subject_id").
		Where("class_group_subjects.class_group_subject_class_group_id = ?", cg.ClassGroupID).
		Order("subjects.subject_name ASC").
		Pluck("subjects.subject_name", &names).Error
	return names, err
}
