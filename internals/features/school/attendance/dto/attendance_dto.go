// internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

// MarkAttendanceRequest upserts on (student, date): a second mark for the
// same day replaces status/remarks instead of inserting.
type MarkAttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required"` // YYYY-MM-DD
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	AttendanceRemarks   *string   `json:"attendance_remarks" validate:"omitempty"`
}

func (r MarkAttendanceRequest) ToModel() (*model.AttendanceModel, error) {
	day, err := dbtime.ParseDateLocal(strings.TrimSpace(r.AttendanceDate))
	if err != nil {
		return nil, err
	}
	m := &model.AttendanceModel{
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceDate:      dbtime.StartOfDay(day),
		AttendanceStatus:    r.AttendanceStatus,
	}
	if r.AttendanceRemarks != nil {
		v := strings.TrimSpace(*r.AttendanceRemarks)
		if v != "" {
			m.AttendanceRemarks = &v
		}
	}
	return m, nil
}

/* ===================== QUERIES ===================== */

type ListAttendanceQuery struct {
	StudentID *uuid.UUID `query:"student_id"`
	Status    *string    `query:"status"`
	Date      *string    `query:"date"` // exact day
	From      *string    `query:"from"` // inclusive
	To        *string    `query:"to"`   // inclusive
}

type AttendanceStatsQuery struct {
	From *string `query:"from"`
	To   *string `query:"to"`
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceDate      string    `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceRemarks   *string   `json:"attendance_remarks,omitempty"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at"`
}

func NewAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceDate:      m.AttendanceDate.Format(dbtime.DateLayout),
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceRemarks:   m.AttendanceRemarks,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

// AttendanceStatsResponse: grouped counts per status within a range
type AttendanceStatsResponse struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Total   int64            `json:"total"`
	Counts  map[string]int64 `json:"counts"`
}
