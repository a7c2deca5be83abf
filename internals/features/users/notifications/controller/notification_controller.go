// internals/features/users/notifications/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifDTO "sekolahku_backend/internals/features/users/notifications/dto"
	notifModel "sekolahku_backend/internals/features/users/notifications/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validateNotification = validator.New()

/* ================= Handlers ================= */

// GET /api/notifications — own notifications, newest first
func (h *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ?", userID)

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []notifModel.NotificationModel
	if err := tx.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	resp := make([]*notifDTO.NotificationResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, notifDTO.NewNotificationResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/notifications/unread-count
func (h *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var count int64
	if err := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"unread": count})
}

// POST /api/notifications — manual insert addressed to the acting user
func (h *NotificationController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req notifDTO.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotification.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.JsonCreated(c, "Notification created", notifDTO.NewNotificationResponse(m))
}

// PUT /api/notifications/:id/read — the read flag is the only
// user-mutable field on an existing notification.
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{"notification_id": id})
}

// PUT /api/notifications/read-all
func (h *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	res := h.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}

// DELETE /api/notifications/:id
func (h *NotificationController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := h.DB.Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Delete(&notifModel.NotificationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonDeleted(c, "Notification deleted", fiber.Map{"notification_id": id})
}

// GET /api/activities/recent — latest notifications across users,
// surfaced as an activity feed.
func (h *NotificationController) RecentActivities(c *fiber.Ctx) error {
	var rows []notifModel.NotificationModel
	if err := h.DB.Order("notification_created_at DESC").
		Limit(20).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	resp := make([]notifDTO.ActivityResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, notifDTO.ActivityResponse{
			NotificationID:        rows[i].NotificationID,
			NotificationTitle:     rows[i].NotificationTitle,
			NotificationCategory:  rows[i].NotificationCategory,
			NotificationType:      rows[i].NotificationType,
			NotificationCreatedAt: rows[i].NotificationCreatedAt,
		})
	}
	return helper.JsonOK(c, "OK", resp)
}
