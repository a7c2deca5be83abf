// internals/features/school/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

type FeeModel struct {
	FeeID        uuid.UUID `gorm:"column:fee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_id"`
	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index" json:"fee_student_id"`

	FeeAmount       float64 `gorm:"column:fee_amount;type:numeric(12,2);not null" json:"fee_amount"`
	FeeTerm         string  `gorm:"column:fee_term;type:varchar(30);not null" json:"fee_term"`
	FeeAcademicYear string  `gorm:"column:fee_academic_year;type:varchar(15);not null" json:"fee_academic_year"`

	FeeStatus string `gorm:"column:fee_status;type:varchar(15);not null;default:pending" json:"fee_status"`

	// Set exactly when status transitions to paid, cleared when it leaves paid.
	FeePaymentDate *time.Time `gorm:"column:fee_payment_date;type:timestamptz" json:"fee_payment_date,omitempty"`

	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"column:fee_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"-"`
}

func (FeeModel) TableName() string { return "fees" }
