package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetable_backend/internals/features/users/auth/model"
)

var ErrUserNotFound = errors.New("user not found")

type AuthRepository struct {
	DB *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) CreateUser(u *model.UserModel) error {
	return r.DB.Create(u).Error
}

func (r *AuthRepository) FindUserByName(name string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.Where("user_name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *AuthRepository) FindUserByID(id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *AuthRepository) BlacklistToken(token string, expiredAt time.Time) error {
	return r.DB.Create(&model.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func (r *AuthRepository) IsTokenBlacklisted(token string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.TokenBlacklistModel{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}
