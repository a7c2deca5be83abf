// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"omitempty,oneof=admin teacher"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserFullName: m.UserFullName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
	}
}
