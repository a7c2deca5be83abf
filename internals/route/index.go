// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC (register/login/logout) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PROTECTED /api =====================
	log.Println("[INFO] Setting up /api group (bearer token required)...")
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(api, db)

	log.Println("[INFO] Mounting Notification routes...")
	routeDetails.NotificationRoutes(api, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportRoutes(api, db)
}
