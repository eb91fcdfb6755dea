package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   UserModel: maps to table users
   Staff users may write to the timetable; everyone else
   gets read access only.
   ======================================================= */

type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"type:varchar(50);not null;uniqueIndex;column:user_name"`
	UserPassword string    `json:"-" gorm:"type:varchar(100);not null;column:user_password"`
	UserIsStaff  bool      `json:"user_is_staff" gorm:"type:boolean;not null;default:false;column:user_is_staff"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
