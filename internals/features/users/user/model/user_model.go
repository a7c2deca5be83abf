// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserFullName string    `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:teacher" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
