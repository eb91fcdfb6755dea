package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "timetable_backend/internals/features/timetable/rooms/model"
	"timetable_backend/internals/features/timetable/subjects/dto"
	"timetable_backend/internals/features/timetable/subjects/model"
	yearModel "timetable_backend/internals/features/timetable/years/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

// Names returns every distinct subject name taught anywhere in the school.
func (ctl *SubjectController) Names(c *fiber.Ctx) error {
	var names []string
	err := ctl.DB.Model(&model.SubjectModel{}).
		Distinct("subject_name").
		Order("subject_name ASC").
		Pluck("subject_name", &names).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject names")
	}
	return helper.Success(c, "OK", names)
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SubjectModel{})
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		q = q.Joins("JOIN year_groups ON year_groups.year_group_id = subjects.subject_year_group_id").
			Where("year_groups.year_group_name = ?", "Yr"+year)
	}

	var rows []model.SubjectModel
	if err := q.Order("subject_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	out := make([]dto.SubjectResponse, 0, len(rows))
	for _, m := range rows {
		yearName, blockNum, err := ctl.resolve(m)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve subject relations")
		}
		out = append(out, dto.ToSubjectResponse(m, yearName, blockNum))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	yearName, blockNum, err := ctl.resolve(m)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve subject relations")
	}
	return helper.Success(c, "OK", dto.ToSubjectResponse(m, yearName, blockNum))
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var yg yearModel.YearGroupModel
	if err := ctl.DB.Where("year_group_name = ?", yearModel.YearGroupNameFor(req.SubjectYear)).First(&yg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Year group not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve year group")
	}

	var blockID *uuid.UUID
	if req.SubjectBlock != nil {
		var blk roomModel.BlockModel
		if err := ctl.DB.Where("block_number = ?", *req.SubjectBlock).First(&blk).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Block not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve block")
		}
		blockID = &blk.BlockID
	}

	m := model.SubjectModel{
		SubjectName:        req.SubjectName,
		SubjectYearGroupID: yg.YearGroupID,
		SubjectBlockID:     blockID,
		SubjectCount:       req.SubjectCount,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	blockNum := req.SubjectBlock
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created",
		dto.ToSubjectResponse(m, yg.YearGroupName, blockNum))
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	updates := map[string]interface{}{}
	if req.SubjectName != nil {
		updates["subject_name"] = strings.TrimSpace(*req.SubjectName)
	}
	if req.SubjectCount != nil {
		updates["subject_count"] = *req.SubjectCount
	}
	if req.SubjectBlock != nil {
		var blk roomModel.BlockModel
		if err := ctl.DB.Where("block_number = ?", *req.SubjectBlock).First(&blk).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusNotFound, "Block not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve block")
		}
		updates["subject_block_id"] = blk.BlockID
	}
	if len(updates) > 0 {
		if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
		}
	}

	yearName, blockNum, err := ctl.resolve(m)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve subject relations")
	}
	return helper.Success(c, "Subject updated", dto.ToSubjectResponse(m, yearName, blockNum))
}

// Delete removes the subject along with its join rows; timeslots
// referencing it fall to the cascade FK.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM teacher_subjects WHERE teacher_subject_subject_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM class_group_subjects WHERE class_group_subject_subject_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("subject_id = ?", id).Delete(&model.SubjectModel{})
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
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.Success(c, "Subject deleted", fiber.Map{"deleted": true})
}

/* =======================================================
   HELPERS
   ======================================================= */

func (ctl *SubjectController) resolve(m model.SubjectModel) (yearName string, blockNum *int, err error) {
	var yg yearModel.YearGroupModel
	if err := ctl.DB.Where("year_group_id = ?", m.SubjectYearGroupID).First(&yg).Error; err != nil {
		return "", nil, err
	}
	if m.SubjectBlockID != nil {
		var blk roomModel.BlockModel
		if err := ctl.DB.Where("block_id = ?", *m.SubjectBlockID).First(&blk).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return "", nil, err
			}
		} else {
			blockNum = &blk.BlockNumber
		}
	}
	return yg.YearGroupName, blockNum, nil
}
