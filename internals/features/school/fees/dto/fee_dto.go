// internals/features/school/fees/dto/fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/fees/model"
)

/* ===================== REQUESTS ===================== */

type CreateFeeRequest struct {
	FeeStudentID    uuid.UUID `json:"fee_student_id" validate:"required"`
	FeeAmount       *float64  `json:"fee_amount" validate:"required,gt=0"`
	FeeTerm         string    `json:"fee_term" validate:"required,min=2,max=30"`
	FeeAcademicYear string    `json:"fee_academic_year" validate:"required,min=4,max=15"`
	FeeStatus       *string   `json:"fee_status" validate:"omitempty,oneof=paid pending overdue"`
}

func (r CreateFeeRequest) ToModel() *model.FeeModel {
	amount := 0.0
	if r.FeeAmount != nil {
		amount = *r.FeeAmount
	}
	m := &model.FeeModel{
		FeeStudentID:    r.FeeStudentID,
		FeeAmount:       amount,
		FeeTerm:         strings.TrimSpace(r.FeeTerm),
		FeeAcademicYear: strings.TrimSpace(r.FeeAcademicYear),
		FeeStatus:       model.StatusPending,
	}
	if r.FeeStatus != nil {
		m.FeeStatus = *r.FeeStatus
	}
	if m.FeeStatus == model.StatusPaid {
		now := time.Now().UTC()
		m.FeePaymentDate = &now
	}
	return m
}

// Update: all optional; payment_date tracks the paid transition
type UpdateFeeRequest struct {
	FeeAmount       *float64 `json:"fee_amount" validate:"omitempty,gt=0"`
	FeeTerm         *string  `json:"fee_term" validate:"omitempty,min=2,max=30"`
	FeeAcademicYear *string  `json:"fee_academic_year" validate:"omitempty,min=4,max=15"`
	FeeStatus       *string  `json:"fee_status" validate:"omitempty,oneof=paid pending overdue"`
}

// ApplyToModel stamps payment_date when the status transitions into
// paid and clears it when the status leaves paid.
func (r *UpdateFeeRequest) ApplyToModel(m *model.FeeModel) {
	if r.FeeAmount != nil {
		m.FeeAmount = *r.FeeAmount
	}
	if r.FeeTerm != nil {
		m.FeeTerm = strings.TrimSpace(*r.FeeTerm)
	}
	if r.FeeAcademicYear != nil {
		m.FeeAcademicYear = strings.TrimSpace(*r.FeeAcademicYear)
	}
	if r.FeeStatus != nil && *r.FeeStatus != m.FeeStatus {
		was := m.FeeStatus
		m.FeeStatus = *r.FeeStatus
		if m.FeeStatus == model.StatusPaid {
			now := time.Now().UTC()
			m.FeePaymentDate = &now
		} else if was == model.StatusPaid {
			m.FeePaymentDate = nil
		}
	}
}

/* ===================== QUERIES ===================== */

type ListFeeQuery struct {
	StudentID    *uuid.UUID `query:"student_id"`
	Status       *string    `query:"status"`
	Term         *string    `query:"term"`
	AcademicYear *string    `query:"academic_year"`
}

/* ===================== RESPONSES ===================== */

type FeeResponse struct {
	FeeID           uuid.UUID  `json:"fee_id"`
	FeeStudentID    uuid.UUID  `json:"fee_student_id"`
	FeeAmount       float64    `json:"fee_amount"`
	FeeTerm         string     `json:"fee_term"`
	FeeAcademicYear string     `json:"fee_academic_year"`
	FeeStatus       string     `json:"fee_status"`
	FeePaymentDate  *time.Time `json:"fee_payment_date,omitempty"`
	FeeCreatedAt    time.Time  `json:"fee_created_at"`
	FeeUpdatedAt    time.Time  `json:"fee_updated_at"`
}

func NewFeeResponse(m *model.FeeModel) *FeeResponse {
	if m == nil {
		return nil
	}
	return &FeeResponse{
		FeeID:           m.FeeID,
		FeeStudentID:    m.FeeStudentID,
		FeeAmount:       m.FeeAmount,
		FeeTerm:         m.FeeTerm,
		FeeAcademicYear: m.FeeAcademicYear,
		FeeStatus:       m.FeeStatus,
		FeePaymentDate:  m.FeePaymentDate,
		FeeCreatedAt:    m.FeeCreatedAt,
		FeeUpdatedAt:    m.FeeUpdatedAt,
	}
}
