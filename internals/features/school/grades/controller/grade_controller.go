// internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeDTO "sekolahku_backend/internals/features/school/grades/dto"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	notifModel "sekolahku_backend/internals/features/users/notifications/model"
	notifService "sekolahku_backend/internals/features/users/notifications/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

var validateGrade = validator.New()

/* ================= Helpers ================= */

func (h *GradeController) studentExists(id uuid.UUID) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

/* ================= Handlers ================= */

// POST /api/grades
func (h *GradeController) Create(c *fiber.Ctx) error {
	var req gradeDTO.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrade.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := h.studentExists(req.GradeStudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create grade")
	}

	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		notifService.PushBestEffort(h.DB, actorID,
			"Grade recorded",
			fmt.Sprintf("%s scored %d (%s) in %s", student.StudentName, m.GradeMarks, m.GradeLetter, m.GradeSubject),
			notifModel.TypeInfo, "grades",
			map[string]any{"grade_id": m.GradeID.String(), "student_id": student.StudentID.String()},
		)
	}

	return helper.JsonCreated(c, "Grade created", gradeDTO.NewGradeResponse(m))
}

// GET /api/grades
func (h *GradeController) List(c *fiber.Ctx) error {
	var q gradeDTO.ListGradeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&gradeModel.GradeModel{})
	if q.StudentID != nil && *q.StudentID != uuid.Nil {
		tx = tx.Where("grade_student_id = ?", *q.StudentID)
	}
	if q.Subject != nil && strings.TrimSpace(*q.Subject) != "" {
		tx = tx.Where("grade_subject ILIKE ?", "%"+strings.TrimSpace(*q.Subject)+"%")
	}
	if q.Term != nil && strings.TrimSpace(*q.Term) != "" {
		tx = tx.Where("grade_term = ?", strings.TrimSpace(*q.Term))
	}
	if q.AcademicYear != nil && strings.TrimSpace(*q.AcademicYear) != "" {
		tx = tx.Where("grade_academic_year = ?", strings.TrimSpace(*q.AcademicYear))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count grades")
	}

	var rows []gradeModel.GradeModel
	if err := tx.Order("grade_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}

	resp := make([]*gradeDTO.GradeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, gradeDTO.NewGradeResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/grades/all — full listing joined with student identity
func (h *GradeController) ListAll(c *fiber.Ctx) error {
	var rows []gradeDTO.GradeWithStudentResponse
	err := h.DB.Table("grades").
		Select(`grades.grade_id, grades.grade_student_id, grades.grade_subject,
		        grades.grade_marks, grades.grade_letter, grades.grade_term,
		        grades.grade_academic_year, grades.grade_created_at, grades.grade_updated_at,
		        students.student_name, students.student_roll_number`).
		Joins("JOIN students ON students.student_id = grades.grade_student_id AND students.student_deleted_at IS NULL").
		Where("grades.grade_deleted_at IS NULL").
		Order("grades.grade_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/grades/student/:id
func (h *GradeController) ListByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if _, err := h.studentExists(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var rows []gradeModel.GradeModel
	if err := h.DB.Where("grade_student_id = ?", id).
		Order("grade_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}

	resp := make([]*gradeDTO.GradeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, gradeDTO.NewGradeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/grades/:id
func (h *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade id")
	}

	var m gradeModel.GradeModel
	if err := h.DB.Where("grade_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}
	return helper.JsonOK(c, "OK", gradeDTO.NewGradeResponse(&m))
}

// PUT /api/grades/:id
func (h *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade id")
	}

	var existing gradeModel.GradeModel
	if err := h.DB.Where("grade_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	var req gradeDTO.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrade.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(&existing)

	if err := h.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update grade")
	}
	return helper.JsonUpdated(c, "Grade updated", gradeDTO.NewGradeResponse(&existing))
}

// DELETE /api/grades/:id
func (h *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade id")
	}

	res := h.DB.Where("grade_id = ?", id).Delete(&gradeModel.GradeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete grade")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonDeleted(c, "Grade deleted", fiber.Map{"grade_id": id})
}
