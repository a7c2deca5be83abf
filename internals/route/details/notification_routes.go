// internals/route/details/notification_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "sekolahku_backend/internals/features/users/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	n := r.Group("/notifications")
	n.Get("/", ctl.List)
	n.Post("/", ctl.Create)
	n.Get("/unread-count", ctl.UnreadCount)
	n.Put("/read-all", ctl.MarkAllRead)
	n.Put("/:id/read", ctl.MarkRead)
	n.Delete("/:id", ctl.Delete)

	r.Get("/activities/recent", ctl.RecentActivities)
}
