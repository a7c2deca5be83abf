// internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	feeModel "sekolahku_backend/internals/features/school/fees/model"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	notifModel "sekolahku_backend/internals/features/users/notifications/model"
	notifService "sekolahku_backend/internals/features/users/notifications/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validateStudent = validator.New()

/* ================= Helpers ================= */

func (h *StudentController) findStudent(id uuid.UUID) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

/* ================= Handlers ================= */

// POST /api/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		notifService.PushBestEffort(h.DB, actorID,
			"Student added",
			fmt.Sprintf("Student %s (%s) was added to class %s", m.StudentName, m.StudentRollNumber, m.StudentClass),
			notifModel.TypeSuccess, "students",
			map[string]any{"student_id": m.StudentID.String()},
		)
	}

	return helper.JsonCreated(c, "Student created", studentDTO.NewStudentResponse(m))
}

// POST /api/students/bulk
func (h *StudentController) BulkCreate(c *fiber.Ctx) error {
	var reqs []studentDTO.CreateStudentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body (expected array)")
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Empty student list")
	}
	for i := range reqs {
		if err := validateStudent.Struct(reqs[i]); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	inserted := 0
	skipped := make([]string, 0)
	for i := range reqs {
		m := reqs[i].ToModel()
		if err := h.DB.Create(m).Error; err != nil {
			if helper.IsUniqueErr(err) {
				skipped = append(skipped, m.StudentRollNumber)
				continue
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to insert students")
		}
		inserted++
	}

	return helper.JsonCreated(c, "Bulk insert finished", fiber.Map{
		"inserted":      inserted,
		"skipped_rolls": skipped,
	})
}

// GET /api/students
func (h *StudentController) List(c *fiber.Ctx) error {
	var q studentDTO.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&studentModel.StudentModel{})

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		like := "%" + strings.TrimSpace(*q.Search) + "%"
		tx = tx.Where("student_name ILIKE ? OR student_roll_number ILIKE ?", like, like)
	}
	if q.Class != nil && strings.TrimSpace(*q.Class) != "" {
		tx = tx.Where("student_class = ?", strings.TrimSpace(*q.Class))
	}
	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("student_status = ?", strings.TrimSpace(*q.Status))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := tx.Order("student_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	resp := make([]*studentDTO.StudentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, studentDTO.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	m, err := h.findStudent(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "OK", studentDTO.NewStudentResponse(m))
}

// PUT /api/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	existing, err := h.findStudent(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(existing)

	if err := h.DB.Save(existing).Error; err != nil {
		if helper.IsUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", studentDTO.NewStudentResponse(existing))
}

// DELETE /api/students/:id
// Cascades grades, attendance and fees in one transaction.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("student_id = ?", id).Delete(&studentModel.StudentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("grade_student_id = ?", id).Delete(&gradeModel.GradeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_student_id = ?", id).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fee_student_id = ?", id).Delete(&feeModel.FeeModel{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{
		"student_id": id,
	})
}
