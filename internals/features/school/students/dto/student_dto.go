// internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentName       string `json:"student_name" validate:"required,min=2,max=100"`
	StudentRollNumber string `json:"student_roll_number" validate:"required,min=1,max=30"`
	StudentClass      string `json:"student_class" validate:"required,min=1,max=30"`
	StudentAge        int    `json:"student_age" validate:"required,gte=3,lte=30"`
	StudentGender     string `json:"student_gender" validate:"required,oneof=male female"`

	StudentGuardianName *string `json:"student_guardian_name" validate:"omitempty,max=100"`
	StudentContactPhone *string `json:"student_contact_phone" validate:"omitempty,max=20"`
	StudentAddress      *string `json:"student_address" validate:"omitempty"`

	StudentStatus *string `json:"student_status" validate:"omitempty,oneof=active inactive graduated"`
}

func (r CreateStudentRequest) ToModel() *model.StudentModel {
	m := &model.StudentModel{
		StudentName:       strings.TrimSpace(r.StudentName),
		StudentRollNumber: strings.TrimSpace(r.StudentRollNumber),
		StudentClass:      strings.TrimSpace(r.StudentClass),
		StudentAge:        r.StudentAge,
		StudentGender:     r.StudentGender,
		StudentStatus:     model.StatusActive,
	}
	m.StudentGuardianName = trimPtr(r.StudentGuardianName)
	m.StudentContactPhone = trimPtr(r.StudentContactPhone)
	m.StudentAddress = trimPtr(r.StudentAddress)
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	return m
}

// Update: all optional (partial update, field by field)
type UpdateStudentRequest struct {
	StudentName       *string `json:"student_name" validate:"omitempty,min=2,max=100"`
	StudentRollNumber *string `json:"student_roll_number" validate:"omitempty,min=1,max=30"`
	StudentClass      *string `json:"student_class" validate:"omitempty,min=1,max=30"`
	StudentAge        *int    `json:"student_age" validate:"omitempty,gte=3,lte=30"`
	StudentGender     *string `json:"student_gender" validate:"omitempty,oneof=male female"`

	StudentGuardianName *string `json:"student_guardian_name" validate:"omitempty,max=100"`
	StudentContactPhone *string `json:"student_contact_phone" validate:"omitempty,max=20"`
	StudentAddress      *string `json:"student_address" validate:"omitempty"`

	StudentStatus *string `json:"student_status" validate:"omitempty,oneof=active inactive graduated"`
}

// ApplyToModel: only touch the fields the client sent
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentRollNumber != nil {
		m.StudentRollNumber = strings.TrimSpace(*r.StudentRollNumber)
	}
	if r.StudentClass != nil {
		m.StudentClass = strings.TrimSpace(*r.StudentClass)
	}
	if r.StudentAge != nil {
		m.StudentAge = *r.StudentAge
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = trimPtr(r.StudentGuardianName)
	}
	if r.StudentContactPhone != nil {
		m.StudentContactPhone = trimPtr(r.StudentContactPhone)
	}
	if r.StudentAddress != nil {
		m.StudentAddress = trimPtr(r.StudentAddress)
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
}

/* ===================== QUERIES ===================== */

type ListStudentQuery struct {
	Search *string `query:"search"` // ILIKE on name / roll number
	Class  *string `query:"class"`
	Status *string `query:"status"`
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentName       string    `json:"student_name"`
	StudentRollNumber string    `json:"student_roll_number"`
	StudentClass      string    `json:"student_class"`
	StudentAge        int       `json:"student_age"`
	StudentGender     string    `json:"student_gender"`

	StudentGuardianName *string `json:"student_guardian_name,omitempty"`
	StudentContactPhone *string `json:"student_contact_phone,omitempty"`
	StudentAddress      *string `json:"student_address,omitempty"`

	StudentStatus    string    `json:"student_status"`
	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:           m.StudentID,
		StudentName:         m.StudentName,
		StudentRollNumber:   m.StudentRollNumber,
		StudentClass:        m.StudentClass,
		StudentAge:          m.StudentAge,
		StudentGender:       m.StudentGender,
		StudentGuardianName: m.StudentGuardianName,
		StudentContactPhone: m.StudentContactPhone,
		StudentAddress:      m.StudentAddress,
		StudentStatus:       m.StudentStatus,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
