// internals/features/users/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`

	NotificationTitle    string `gorm:"column:notification_title;type:varchar(120);not null" json:"notification_title"`
	NotificationMessage  string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationType     string `gorm:"column:notification_type;type:varchar(20);not null;default:info" json:"notification_type"`
	NotificationCategory string `gorm:"column:notification_category;type:varchar(40);not null" json:"notification_category"`

	// Free-form context attached by side-effect writers (ids, amounts, ...)
	NotificationMetadata datatypes.JSON `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`

	NotificationRead bool `gorm:"column:notification_read;not null;default:false" json:"notification_read"`

	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;type:timestamptz;not null;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;type:timestamptz;not null;autoUpdateTime" json:"notification_updated_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"-"`
}

func (NotificationModel) TableName() string { return "notifications" }
