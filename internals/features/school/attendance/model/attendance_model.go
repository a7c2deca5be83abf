// internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// No soft delete here: the (student, date) unique constraint backs the
// upsert, and a soft-deleted row would block re-marking the same day.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date" json:"attendance_student_id"`

	// Day granularity, truncated to 00:00 before every write.
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date" json:"attendance_date"`

	AttendanceStatus  string  `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceRemarks *string `gorm:"column:attendance_remarks;type:text" json:"attendance_remarks,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
