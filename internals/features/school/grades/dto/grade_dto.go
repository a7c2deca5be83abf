// internals/features/school/grades/dto/grade_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grades/model"
)

/* ===================== REQUESTS ===================== */

type CreateGradeRequest struct {
	GradeStudentID    uuid.UUID `json:"grade_student_id" validate:"required"`
	GradeSubject      string    `json:"grade_subject" validate:"required,min=2,max=60"`
	GradeMarks        *int      `json:"grade_marks" validate:"required,gte=0,lte=100"`
	GradeTerm         string    `json:"grade_term" validate:"required,min=2,max=30"`
	GradeAcademicYear string    `json:"grade_academic_year" validate:"required,min=4,max=15"`
}

func (r CreateGradeRequest) ToModel() *model.GradeModel {
	marks := 0
	if r.GradeMarks != nil {
		marks = *r.GradeMarks
	}
	return &model.GradeModel{
		GradeStudentID:    r.GradeStudentID,
		GradeSubject:      strings.TrimSpace(r.GradeSubject),
		GradeMarks:        marks,
		GradeLetter:       model.LetterFromMarks(marks),
		GradeTerm:         strings.TrimSpace(r.GradeTerm),
		GradeAcademicYear: strings.TrimSpace(r.GradeAcademicYear),
	}
}

// Update: all optional; letter is re-derived when marks change
type UpdateGradeRequest struct {
	GradeSubject      *string `json:"grade_subject" validate:"omitempty,min=2,max=60"`
	GradeMarks        *int    `json:"grade_marks" validate:"omitempty,gte=0,lte=100"`
	GradeTerm         *string `json:"grade_term" validate:"omitempty,min=2,max=30"`
	GradeAcademicYear *string `json:"grade_academic_year" validate:"omitempty,min=4,max=15"`
}

func (r *UpdateGradeRequest) ApplyToModel(m *model.GradeModel) {
	if r.GradeSubject != nil {
		m.GradeSubject = strings.TrimSpace(*r.GradeSubject)
	}
	if r.GradeMarks != nil {
		m.GradeMarks = *r.GradeMarks
		m.GradeLetter = model.LetterFromMarks(*r.GradeMarks)
	}
	if r.GradeTerm != nil {
		m.GradeTerm = strings.TrimSpace(*r.GradeTerm)
	}
	if r.GradeAcademicYear != nil {
		m.GradeAcademicYear = strings.TrimSpace(*r.GradeAcademicYear)
	}
}

/* ===================== QUERIES ===================== */

type ListGradeQuery struct {
	StudentID    *uuid.UUID `query:"student_id"`
	Subject      *string    `query:"subject"`
	Term         *string    `query:"term"`
	AcademicYear *string    `query:"academic_year"`
}

/* ===================== RESPONSES ===================== */

type GradeResponse struct {
	GradeID           uuid.UUID `json:"grade_id"`
	GradeStudentID    uuid.UUID `json:"grade_student_id"`
	GradeSubject      string    `json:"grade_subject"`
	GradeMarks        int       `json:"grade_marks"`
	GradeLetter       string    `json:"grade_letter"`
	GradeTerm         string    `json:"grade_term"`
	GradeAcademicYear string    `json:"grade_academic_year"`
	GradeCreatedAt    time.Time `json:"grade_created_at"`
	GradeUpdatedAt    time.Time `json:"grade_updated_at"`
}

func NewGradeResponse(m *model.GradeModel) *GradeResponse {
	if m == nil {
		return nil
	}
	return &GradeResponse{
		GradeID:           m.GradeID,
		GradeStudentID:    m.GradeStudentID,
		GradeSubject:      m.GradeSubject,
		GradeMarks:        m.GradeMarks,
		GradeLetter:       m.GradeLetter,
		GradeTerm:         m.GradeTerm,
		GradeAcademicYear: m.GradeAcademicYear,
		GradeCreatedAt:    m.GradeCreatedAt,
		GradeUpdatedAt:    m.GradeUpdatedAt,
	}
}

// GradeWithStudentResponse: listing joined with student identity
type GradeWithStudentResponse struct {
	GradeResponse
	StudentName       string `json:"student_name"`
	StudentRollNumber string `json:"student_roll_number"`
}
