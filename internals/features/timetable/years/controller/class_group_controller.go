package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/years/dto"
	"timetable_backend/internals/features/timetable/years/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER: class groups
   ======================================================= */

type ClassGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassGroupController(db *gorm.DB, v *validator.Validate) *ClassGroupController {
	return &ClassGroupController{DB: db, Validate: v}
}

func (ctl *ClassGroupController) List(c *fiber.Ctx) error {
	var rows []model.ClassGroupModel
	if err := ctl.DB.Order("class_group_code ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class groups")
	}

	out := make([]dto.ClassGroupResponse, 0, len(rows))
	for _, cg := range rows {
		names, err := classSubjectNames(ctl.DB, cg)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve class subjects")
		}
		out = append(out, dto.ToClassGroupResponse(cg, names))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *ClassGroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var cg model.ClassGroupModel
	if err := ctl.DB.Where("class_group_id = ?", id).First(&cg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class group")
	}

	names, err := classSubjectNames(ctl.DB, cg)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve class subjects")
	}
	return helper.Success(c, "OK", dto.ToClassGroupResponse(cg, names))
}

// Create inserts the class and attaches it to the year group its code
// encodes: "7B2" lands in Yr7. The year group must already exist.
func (ctl *ClassGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	yearGroupName := "Yr" + req.ClassGroupCode[:1]
	var yg model.YearGroupModel
	if err := ctl.DB.Where("year_group_name = ?", yearGroupName).First(&yg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Year group not found for class code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve year group")
	}

	cg := model.ClassGroupModel{
		ClassGroupCode:      req.ClassGroupCode,
		ClassGroupNumPupils: req.ClassGroupNumPupils,
	}
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cg).Error; err != nil {
			return err
		}
		link := model.YearGroupClassModel{
			YearGroupClassYearGroupID:  yg.YearGroupID,
			YearGroupClassClassGroupID: cg.ClassGroupID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return replaceClassSubjects(tx, cg.ClassGroupID, req.SubjectIDs)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Class code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create class group")
	}

	names, _ := classSubjectNames(ctl.DB, cg)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class group created", dto.ToClassGroupResponse(cg, names))
}

func (ctl *ClassGroupController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateClassGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cg model.ClassGroupModel
	if err := ctl.DB.Where("class_group_id = ?", id).First(&cg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class group")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.ClassGroupCode != nil {
			updates["class_group_code"] = strings.TrimSpace(*req.ClassGroupCode)
		}
		if req.ClassGroupNumPupils != nil {
			updates["class_group_num_pupils"] = *req.ClassGroupNumPupils
		}
		if len(updates) > 0 {
			if err := tx.Model(&cg).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.SubjectIDs != nil {
			if err := tx.Exec("DELETE FROM class_group_subjects WHERE class_group_subject_class_group_id = ?", cg.ClassGroupID).Error; err != nil {
				return err
			}
			return replaceClassSubjects(tx, cg.ClassGroupID, *req.SubjectIDs)
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Class code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update class group")
	}

	names, _ := classSubjectNames(ctl.DB, cg)
	return helper.Success(c, "Class group updated", dto.ToClassGroupResponse(cg, names))
}

// Delete removes the class, its membership and subject rows; the
// cascade FK clears its timeslots.
func (ctl *ClassGroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM year_group_classes WHERE year_group_class_class_group_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM class_group_subjects WHERE class_group_subject_class_group_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("class_group_id = ?", id).Delete(&model.ClassGroupModel{})
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
			return helper.Error(c, fiber.StatusNotFound, "Class group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete class group")
	}
	return helper.Success(c, "Class group deleted", fiber.Map{"deleted": true})
}

/* =======================================================
   HELPERS
   ======================================================= */

func replaceClassSubjects(tx *gorm.DB, classGroupID uuid.UUID, subjectIDs []string) error {
	for _, raw := range subjectIDs {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		row := model.ClassGroupSubjectModel{
			ClassGroupSubjectClassGroupID: classGroupID,
			ClassGroupSubjectSubjectID:    subjectID,
		}
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
