package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/rooms/dto"
	"timetable_backend/internals/features/timetable/rooms/model"
	helper "timetable_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&model.RoomModel{}).Order("room_number ASC")

	// optional filters
	if desc := strings.TrimSpace(c.Query("description")); desc != "" {
		db = db.Where("room_description = ?", desc)
	}
	if block := strings.TrimSpace(c.Query("block")); block != "" {
		id, err := uuid.Parse(block)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid block id")
		}
		db = db.Where("room_block_id = ?", id)
	}

	var rows []model.RoomModel
	if err := db.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch rooms")
	}

	out := make([]dto.RoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRoomResponse(m))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Room not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch room")
	}
	return helper.Success(c, "OK", dto.ToRoomResponse(m))
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.RoomModel{
		RoomNumber:      req.RoomNumber,
		RoomType:        model.RoomType(req.RoomType),
		RoomDescription: req.RoomDescription,
		RoomCapacity:    req.RoomCapacity,
		RoomFacilities:  req.RoomFacilities,
	}
	if req.RoomBlockID != nil {
		id, err := uuid.Parse(*req.RoomBlockID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid block id")
		}
		m.RoomBlockID = &id
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Room number already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", dto.ToRoomResponse(m))
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.RoomModel
	if err := ctl.DB.Where("room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Room not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch room")
	}

	updates := map[string]interface{}{}
	if req.RoomNumber != nil {
		updates["room_number"] = strings.TrimSpace(*req.RoomNumber)
	}
	if req.RoomType != nil {
		updates["room_type"] = *req.RoomType
	}
	if req.RoomDescription != nil {
		updates["room_description"] = strPtrOrNil(req.RoomDescription)
	}
	if req.RoomCapacity != nil {
		updates["room_capacity"] = *req.RoomCapacity
	}
	if req.RoomBlockID != nil {
		blockID, err := uuid.Parse(*req.RoomBlockID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid block id")
		}
		updates["room_block_id"] = blockID
	}
	if req.RoomFacilities != nil {
		updates["room_facilities"] = *req.RoomFacilities
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Room number already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update room")
	}
	return helper.Success(c, "Room updated", dto.ToRoomResponse(m))
}

// Delete removes the room; its timeslots go with it through the
// cascade FK, and habitual-room join rows are cleaned up here.
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM teacher_rooms WHERE teacher_room_room_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("room_id = ?", id).Delete(&model.RoomModel{})
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
			return helper.Error(c, fiber.StatusNotFound, "Room not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete room")
	}
	return helper.Success(c, "Room deleted", fiber.Map{"deleted": true})
}

/* =======================================================
   HELPERS
   ======================================================= */

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// Postgres unique violation (code 23505), detected by substring
// so no driver package gets imported here.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
