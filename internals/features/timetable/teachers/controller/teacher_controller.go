package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/teachers/dto"
	"timetable_backend/internals/features/timetable/teachers/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var rows []model.TeacherModel
	if err := ctl.DB.Order("teacher_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, m := range rows {
		rooms, subjects, err := ctl.relations(m.TeacherID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve teacher relations")
		}
		out = append(out, dto.ToTeacherResponse(m, rooms, subjects))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	rooms, subjects, err := ctl.relations(m.TeacherID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve teacher relations")
	}
	return helper.Success(c, "OK", dto.ToTeacherResponse(m, rooms, subjects))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.TeacherModel{
		TeacherName:          req.TeacherName,
		TeacherLessonsWeekly: req.TeacherLessonsWeekly,
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if err := replaceTeacherRooms(tx, m.TeacherID, req.RoomIDs); err != nil {
			return err
		}
		return replaceTeacherSubjects(tx, m.TeacherID, req.SubjectIDs)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Teacher name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	rooms, subjects, _ := ctl.relations(m.TeacherID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", dto.ToTeacherResponse(m, rooms, subjects))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.TeacherName != nil {
			updates["teacher_name"] = strings.TrimSpace(*req.TeacherName)
		}
		if req.TeacherLessonsWeekly != nil {
			updates["teacher_lessons_weekly"] = *req.TeacherLessonsWeekly
		}
		if len(updates) > 0 {
			if err := tx.Model(&m).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.RoomIDs != nil {
			if err := tx.Exec("DELETE FROM teacher_rooms WHERE teacher_room_teacher_id = ?", m.TeacherID).Error; err != nil {
				return err
			}
			if err := replaceTeacherRooms(tx, m.TeacherID, *req.RoomIDs); err != nil {
				return err
			}
		}
		if req.SubjectIDs != nil {
			if err := tx.Exec("DELETE FROM teacher_subjects WHERE teacher_subject_teacher_id = ?", m.TeacherID).Error; err != nil {
				return err
			}
			if err := replaceTeacherSubjects(tx, m.TeacherID, *req.SubjectIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Teacher name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}

	rooms, subjects, _ := ctl.relations(m.TeacherID)
	return helper.Success(c, "Teacher updated", dto.ToTeacherResponse(m, rooms, subjects))
}

// Delete removes the teacher, their join rows, and (through the
// cascade FK) every timeslot they were assigned to.
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM teacher_rooms WHERE teacher_room_teacher_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM teacher_subjects WHERE teacher_subject_teacher_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("teacher_id = ?", id).Delete(&model.TeacherModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.Success(c, "Teacher deleted", fiber.Map{"deleted": true})
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *TeacherController) relations(teacherID uuid.UUID) (rooms []string, subjects []string, err error) {
	err = ctl.DB.Table("teacher_rooms").
		Joins("JOIN rooms ON rooms.room_id = teacher_rooms.teacher_room_room_id").
		Where("teacher_rooms.teacher_room_teacher_id = ?", teacherID).
		Order("rooms.room_number ASC").
		Pluck("rooms.room_number", &rooms).Error
	if err != nil {
		return nil, nil, err
	}
	err = ctl.DB.Table("teacher_subjects").
		Joins("JOIN subjects ON subjects.subject_id = teacher_subjects.teacher_subject_subject_id").
		Where("teacher_subjects.teacher_subject_teacher_id = ?", teacherID).
		Order("subjects.subject_name ASC").
		Pluck("subjects.subject_name", &subjects).Error
	if err != nil {
		return nil, nil, err
	}
	return rooms, subjects, nil
}

func replaceTeacherRooms(tx *gorm.DB, teacherID uuid.UUID, roomIDs []string) error {
	for _, raw := range roomIDs {
		roomID, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		row := model.TeacherRoomModel{TeacherRoomTeacherID: teacherID, TeacherRoomRoomID: roomID}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceTeacherSubjects(tx *gorm.DB, teacherID uuid.UUID, subjectIDs []string) error {
	for _, raw := range subjectIDs {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		row := model.TeacherSubjectModel{TeacherSubjectTeacherID: teacherID, TeacherSubjectSubjectID: subjectID}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
