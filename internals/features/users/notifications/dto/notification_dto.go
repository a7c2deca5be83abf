// internals/features/users/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/users/notifications/model"
)

/* ===================== REQUESTS ===================== */

// Manual insert (the usual path is the side-effect service).
type CreateNotificationRequest struct {
	NotificationTitle    string  `json:"notification_title" validate:"required,min=2,max=120"`
	NotificationMessage  string  `json:"notification_message" validate:"required"`
	NotificationType     *string `json:"notification_type" validate:"omitempty,oneof=info success warning error"`
	NotificationCategory string  `json:"notification_category" validate:"required,min=2,max=40"`
}

func (r CreateNotificationRequest) ToModel(userID uuid.UUID) *model.NotificationModel {
	m := &model.NotificationModel{
		NotificationUserID:   userID,
		NotificationTitle:    strings.TrimSpace(r.NotificationTitle),
		NotificationMessage:  strings.TrimSpace(r.NotificationMessage),
		NotificationType:     model.TypeInfo,
		NotificationCategory: strings.TrimSpace(r.NotificationCategory),
	}
	if r.NotificationType != nil {
		m.NotificationType = *r.NotificationType
	}
	return m
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	NotificationID       uuid.UUID      `json:"notification_id"`
	NotificationUserID   uuid.UUID      `json:"notification_user_id"`
	NotificationTitle    string         `json:"notification_title"`
	NotificationMessage  string         `json:"notification_message"`
	NotificationType     string         `json:"notification_type"`
	NotificationCategory string         `json:"notification_category"`
	NotificationMetadata datatypes.JSON `json:"notification_metadata,omitempty"`
	NotificationRead     bool           `json:"notification_read"`
	NotificationCreatedAt time.Time     `json:"notification_created_at"`
}

func NewNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationUserID:    m.NotificationUserID,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationType:      m.NotificationType,
		NotificationCategory:  m.NotificationCategory,
		NotificationMetadata:  m.NotificationMetadata,
		NotificationRead:      m.NotificationRead,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}

// ActivityResponse: compact feed entry for /api/activities/recent
type ActivityResponse struct {
	NotificationID        uuid.UUID `json:"notification_id"`
	NotificationTitle     string    `json:"notification_title"`
	NotificationCategory  string    `json:"notification_category"`
	NotificationType      string    `json:"notification_type"`
	NotificationCreatedAt time.Time `json:"notification_created_at"`
}
