// internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attModel "sekolahku_backend/internals/features/school/attendance/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validateAttendance = validator.New()

/* ================= Handlers ================= */

// POST /api/attendance
// Atomic upsert on (student, day) via ON CONFLICT: concurrent marks for
// the same day can never produce duplicate rows.
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	var req attDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", m.AttendanceStudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	// Existence decides 201 vs 200; the upsert itself stays atomic either way.
	var prior int64
	if err := h.DB.Model(&attModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_date = ?",
			m.AttendanceStudentID, m.AttendanceDate).
		Count(&prior).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"attendance_status":     m.AttendanceStatus,
			"attendance_remarks":    m.AttendanceRemarks,
			"attendance_updated_at": time.Now().UTC(),
		}),
	}).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	// Re-read so the response carries the persisted row (id + timestamps)
	var saved attModel.AttendanceModel
	if err := h.DB.Where("attendance_student_id = ? AND attendance_date = ?",
		m.AttendanceStudentID, m.AttendanceDate).First(&saved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	if prior > 0 {
		return helper.JsonUpdated(c, "Attendance updated", attDTO.NewAttendanceResponse(&saved))
	}
	return helper.JsonCreated(c, "Attendance marked", attDTO.NewAttendanceResponse(&saved))
}

// GET /api/attendance
func (h *AttendanceController) List(c *fiber.Ctx) error {
	var q attDTO.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&attModel.AttendanceModel{})
	if q.StudentID != nil && *q.StudentID != uuid.Nil {
		tx = tx.Where("attendance_student_id = ?", *q.StudentID)
	}
	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("attendance_status = ?", strings.TrimSpace(*q.Status))
	}
	if q.Date != nil && strings.TrimSpace(*q.Date) != "" {
		day, err := dbtime.ParseDateLocal(strings.TrimSpace(*q.Date))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("attendance_date = ?", day)
	}
	if q.From != nil && strings.TrimSpace(*q.From) != "" {
		from, err := dbtime.ParseDateLocal(strings.TrimSpace(*q.From))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("attendance_date >= ?", from)
	}
	if q.To != nil && strings.TrimSpace(*q.To) != "" {
		to, err := dbtime.ParseDateLocal(strings.TrimSpace(*q.To))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("attendance_date <= ?", to)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	var rows []attModel.AttendanceModel
	if err := tx.Order("attendance_date DESC, attendance_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	resp := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, attDTO.NewAttendanceResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/attendance/:id
func (h *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var m attModel.AttendanceModel
	if err := h.DB.Where("attendance_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "OK", attDTO.NewAttendanceResponse(&m))
}

// DELETE /api/attendance/:id — hard delete; the (student, date) slot is
// freed for a fresh mark.
func (h *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	res := h.DB.Where("attendance_id = ?", id).Delete(&attModel.AttendanceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"attendance_id": id})
}

// GET /api/attendance/student/:id
func (h *AttendanceController) ListByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var rows []attModel.AttendanceModel
	if err := h.DB.Where("attendance_student_id = ?", id).
		Order("attendance_date DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	resp := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, attDTO.NewAttendanceResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/attendance/stats — grouped count per status, default range is
// the current calendar month.
func (h *AttendanceController) Stats(c *fiber.Ctx) error {
	var q attDTO.AttendanceStatsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	from, to := dbtime.MonthRange(time.Now())
	if q.From != nil && strings.TrimSpace(*q.From) != "" {
		v, err := dbtime.ParseDateLocal(strings.TrimSpace(*q.From))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		from = v
	}
	if q.To != nil && strings.TrimSpace(*q.To) != "" {
		v, err := dbtime.ParseDateLocal(strings.TrimSpace(*q.To))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		to = v.AddDate(0, 0, 1) // inclusive upper bound
	}

	type statusCount struct {
		Status string `gorm:"column:attendance_status"`
		Count  int64  `gorm:"column:count"`
	}
	var grouped []statusCount
	if err := h.DB.Model(&attModel.AttendanceModel{}).
		Select("attendance_status, COUNT(*) AS count").
		Where("attendance_date >= ? AND attendance_date < ?", from, to).
		Group("attendance_status").
		Scan(&grouped).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute attendance stats")
	}

	counts := map[string]int64{
		attModel.StatusPresent: 0,
		attModel.StatusAbsent:  0,
		attModel.StatusLate:    0,
		attModel.StatusExcused: 0,
	}
	var total int64
	for _, g := range grouped {
		counts[g.Status] = g.Count
		total += g.Count
	}

	return helper.JsonOK(c, "OK", attDTO.AttendanceStatsResponse{
		From:   from.Format(dbtime.DateLayout),
		To:     to.AddDate(0, 0, -1).Format(dbtime.DateLayout),
		Total:  total,
		Counts: counts,
	})
}
