// internals/features/school/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeDTO "sekolahku_backend/internals/features/school/fees/dto"
	feeModel "sekolahku_backend/internals/features/school/fees/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	notifModel "sekolahku_backend/internals/features/users/notifications/model"
	notifService "sekolahku_backend/internals/features/users/notifications/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

var validateFee = validator.New()

/* ================= Handlers ================= */

// POST /api/fees
func (h *FeeController) Create(c *fiber.Ctx) error {
	var req feeDTO.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFee.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", req.FeeStudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee")
	}

	if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
		notifService.PushBestEffort(h.DB, actorID,
			"Fee recorded",
			fmt.Sprintf("Fee of %.2f (%s) recorded for %s", m.FeeAmount, m.FeeStatus, student.StudentName),
			notifModel.TypeInfo, "fees",
			map[string]any{"fee_id": m.FeeID.String(), "student_id": student.StudentID.String()},
		)
	}

	return helper.JsonCreated(c, "Fee created", feeDTO.NewFeeResponse(m))
}

// GET /api/fees
func (h *FeeController) List(c *fiber.Ctx) error {
	var q feeDTO.ListFeeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&feeModel.FeeModel{})
	if q.StudentID != nil && *q.StudentID != uuid.Nil {
		tx = tx.Where("fee_student_id = ?", *q.StudentID)
	}
	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("fee_status = ?", strings.TrimSpace(*q.Status))
	}
	if q.Term != nil && strings.TrimSpace(*q.Term) != "" {
		tx = tx.Where("fee_term = ?", strings.TrimSpace(*q.Term))
	}
	if q.AcademicYear != nil && strings.TrimSpace(*q.AcademicYear) != "" {
		tx = tx.Where("fee_academic_year = ?", strings.TrimSpace(*q.AcademicYear))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fees")
	}

	var rows []feeModel.FeeModel
	if err := tx.Order("fee_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	resp := make([]*feeDTO.FeeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, feeDTO.NewFeeResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/fees/student/:id
func (h *FeeController) ListByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var rows []feeModel.FeeModel
	if err := h.DB.Where("fee_student_id = ?", id).
		Order("fee_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	resp := make([]*feeDTO.FeeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, feeDTO.NewFeeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/fees/:id
func (h *FeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee id")
	}

	var m feeModel.FeeModel
	if err := h.DB.Where("fee_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}
	return helper.JsonOK(c, "OK", feeDTO.NewFeeResponse(&m))
}

// PUT /api/fees/:id
func (h *FeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee id")
	}

	var existing feeModel.FeeModel
	if err := h.DB.Where("fee_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	var req feeDTO.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFee.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(&existing)

	if err := h.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}
	return helper.JsonUpdated(c, "Fee updated", feeDTO.NewFeeResponse(&existing))
}

// DELETE /api/fees/:id
func (h *FeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee id")
	}

	res := h.DB.Where("fee_id = ?", id).Delete(&feeModel.FeeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
	}
	return helper.JsonDeleted(c, "Fee deleted", fiber.Map{"fee_id": id})
}
