// internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "sekolahku_backend/internals/features/school/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	r.Get("/stats/dashboard", ctl.Dashboard)

	reports := r.Group("/reports")
	reports.Get("/class-distribution", ctl.ClassDistribution)
	reports.Get("/top-performers", ctl.TopPerformers)
}
