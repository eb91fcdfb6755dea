package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/timetable/rooms/model"
	helper "timetable_backend/internals/helpers"
)

type BlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBlockController(db *gorm.DB, v *validator.Validate) *BlockController {
	return &BlockController{DB: db, Validate: v}
}

type blockRequest struct {
	BlockNumber int `json:"block_number" validate:"gte=0"`
}

func (ctl *BlockController) List(c *fiber.Ctx) error {
	var rows []model.BlockModel
	if err := ctl.DB.Order("block_number ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blocks")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *BlockController) Create(c *fiber.Ctx) error {
	var req blockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.BlockModel{BlockNumber: req.BlockNumber}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create block")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Block created", m)
}

func (ctl *BlockController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where("block_id = ?", id).Delete(&model.BlockModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete block")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Block not found")
	}
	return helper.Success(c, "Block deleted", fiber.Map{"deleted": true})
}
