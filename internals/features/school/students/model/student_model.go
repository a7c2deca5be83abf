// internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

type StudentModel struct {
	StudentID         uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentName       string    `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentRollNumber string    `gorm:"column:student_roll_number;type:varchar(30);not null;uniqueIndex" json:"student_roll_number"`
	StudentClass      string    `gorm:"column:student_class;type:varchar(30);not null" json:"student_class"`
	StudentAge        int       `gorm:"column:student_age;not null" json:"student_age"`
	StudentGender     string    `gorm:"column:student_gender;type:varchar(10);not null" json:"student_gender"`

	StudentGuardianName *string `gorm:"column:student_guardian_name;type:varchar(100)" json:"student_guardian_name,omitempty"`
	StudentContactPhone *string `gorm:"column:student_contact_phone;type:varchar(20)" json:"student_contact_phone,omitempty"`
	StudentAddress      *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	StudentStatus string `gorm:"column:student_status;type:varchar(20);not null;default:active" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
