// internals/features/school/reports/dto/report_dto.go
package dto

import "github.com/google/uuid"

// DashboardStatsResponse: simple aggregates, computed fresh per request
type DashboardStatsResponse struct {
	TotalStudents  int64 `json:"total_students"`
	ActiveStudents int64 `json:"active_students"`
	TotalClasses   int64 `json:"total_classes"`
	PresentToday   int64 `json:"present_today"`
	PendingFees    int64 `json:"pending_fees"`
}

type ClassDistributionEntry struct {
	StudentClass string `gorm:"column:student_class" json:"student_class"`
	Count        int64  `gorm:"column:count" json:"count"`
}

type TopPerformerEntry struct {
	StudentID         uuid.UUID `gorm:"column:student_id" json:"student_id"`
	StudentName       string    `gorm:"column:student_name" json:"student_name"`
	StudentRollNumber string    `gorm:"column:student_roll_number" json:"student_roll_number"`
	StudentClass      string    `gorm:"column:student_class" json:"student_class"`
	AverageMarks      float64   `gorm:"column:average_marks" json:"average_marks"`
	GradedSubjects    int64     `gorm:"column:graded_subjects" json:"graded_subjects"`
}
