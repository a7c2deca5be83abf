// internals/features/users/notifications/service/notification_service.go
package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notifModel "sekolahku_backend/internals/features/users/notifications/model"
)

// Push inserts a notification for userID. Used as a side effect of
// selected writes (create student, add grade, add fee).
func Push(db *gorm.DB, userID uuid.UUID, title, message, ntype, category string, meta map[string]any) error {
	n := notifModel.NotificationModel{
		NotificationUserID:   userID,
		NotificationTitle:    title,
		NotificationMessage:  message,
		NotificationType:     ntype,
		NotificationCategory: category,
	}
	if len(meta) > 0 {
		if raw, err := json.Marshal(meta); err == nil {
			n.NotificationMetadata = datatypes.JSON(raw)
		}
	}
	return db.Create(&n).Error
}

// PushBestEffort logs instead of failing the parent write: the primary
// operation has already been committed when this runs.
func PushBestEffort(db *gorm.DB, userID uuid.UUID, title, message, ntype, category string, meta map[string]any) {
	if userID == uuid.Nil {
		return
	}
	if err := Push(db, userID, title, message, ntype, category, meta); err != nil {
		log.Printf("[WARN] notification push failed: %v", err)
	}
}
