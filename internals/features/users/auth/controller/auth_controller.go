package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/users/auth/dto"
	"timetable_backend/internals/features/users/auth/model"
	"timetable_backend/internals/features/users/auth/repository"
	"timetable_backend/internals/features/users/auth/service"
	helper "timetable_backend/internals/helpers"
)

type AuthController struct {
	Repo     *repository.AuthRepository
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Repo:     repository.NewAuthRepository(db),
		Validate: validator.New(),
	}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserPassword: hash,
		// staff flag is granted by an admin afterwards, never self-assigned
	}
	if err := ctl.Repo.CreateUser(&user); err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", dto.ToUserResponse(&user))
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctl.Repo.FindUserByName(strings.TrimSpace(req.UserName))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !service.CheckPassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	access, err := service.CreateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := service.CreateRefreshToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Logged in", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(user),
	})
}

// Logout blacklists the presented access token until it would
// have expired anyway.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "No token to revoke")
	}
	if err := ctl.Repo.BlacklistToken(raw, service.TokenExpiry(raw)); err != nil {
		if isUniqueViolation(err) {
			return helper.Success(c, "Already logged out", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.Success(c, "Logged out", nil)
}

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "refresh_token is required")
	}

	idStr, err := service.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := ctl.Repo.FindUserByID(id)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unknown user")
	}

	access, err := service.CreateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.Success(c, "Token refreshed", fiber.Map{"access_token": access})
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := ctl.Repo.FindUserByID(id)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", dto.ToUserResponse(user))
}

// Postgres unique violation, detected by substring so no driver
// package is imported here.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
