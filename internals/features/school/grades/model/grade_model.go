// internals/features/school/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeModel struct {
	GradeID        uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	GradeStudentID uuid.UUID `gorm:"column:grade_student_id;type:uuid;not null;index" json:"grade_student_id"`

	GradeSubject string `gorm:"column:grade_subject;type:varchar(60);not null" json:"grade_subject"`
	GradeMarks   int    `gorm:"column:grade_marks;not null" json:"grade_marks"`

	// Derived from marks on every write, never client-supplied.
	GradeLetter string `gorm:"column:grade_letter;type:varchar(3);not null" json:"grade_letter"`

	GradeTerm         string `gorm:"column:grade_term;type:varchar(30);not null" json:"grade_term"`
	GradeAcademicYear string `gorm:"column:grade_academic_year;type:varchar(15);not null" json:"grade_academic_year"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;type:timestamptz;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;type:timestamptz;not null;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"-"`
}

func (GradeModel) TableName() string { return "grades" }

// LetterFromMarks maps marks [0,100] onto the report-card letter.
func LetterFromMarks(marks int) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B"
	case marks >= 60:
		return "C"
	case marks >= 50:
		return "D"
	default:
		return "F"
	}
}
