// internals/features/school/reports/controller/report_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attModel "sekolahku_backend/internals/features/school/attendance/model"
	feeModel "sekolahku_backend/internals/features/school/fees/model"
	reportDTO "sekolahku_backend/internals/features/school/reports/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ================= Handlers ================= */

// GET /api/stats/dashboard
func (h *ReportController) Dashboard(c *fiber.Ctx) error {
	var stats reportDTO.DashboardStatsResponse

	// total counts all statuses; active only status=active
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Count(&stats.TotalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", studentModel.StatusActive).
		Count(&stats.ActiveStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_class").
		Count(&stats.TotalClasses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	today := dbtime.StartOfDay(time.Now())
	if err := h.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status = ?", today, attModel.StatusPresent).
		Count(&stats.PresentToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	if err := h.DB.Model(&feeModel.FeeModel{}).
		Where("fee_status = ?", feeModel.StatusPending).
		Count(&stats.PendingFees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}

	return helper.JsonOK(c, "OK", stats)
}

// GET /api/reports/class-distribution — active students per class
func (h *ReportController) ClassDistribution(c *fiber.Ctx) error {
	var rows []reportDTO.ClassDistributionEntry
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Select("student_class, COUNT(*) AS count").
		Where("student_status = ?", studentModel.StatusActive).
		Group("student_class").
		Order("student_class ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute class distribution")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/reports/top-performers — average marks per student, top 10
func (h *ReportController) TopPerformers(c *fiber.Ctx) error {
	var rows []reportDTO.TopPerformerEntry
	err := h.DB.Raw(`
		SELECT s.student_id,
		       s.student_name,
		       s.student_roll_number,
		       s.student_class,
		       ROUND(AVG(g.grade_marks)::numeric, 2) AS average_marks,
		       COUNT(g.grade_id)                     AS graded_subjects
		FROM grades g
		JOIN students s ON s.student_id = g.grade_student_id
		WHERE g.grade_deleted_at IS NULL
		  AND s.student_deleted_at IS NULL
		GROUP BY s.student_id, s.student_name, s.student_roll_number, s.student_class
		ORDER BY average_marks DESC
		LIMIT 10
	`).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute top performers")
	}
	return helper.JsonOK(c, "OK", rows)
}
