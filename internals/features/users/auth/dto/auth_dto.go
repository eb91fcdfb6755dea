package dto

import "timetable_backend/internals/features/users/auth/model"

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	IsStaff  bool   `json:"is_staff"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		IsStaff:  u.UserIsStaff,
	}
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
