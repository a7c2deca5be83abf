package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attModel "sekolahku_backend/internals/features/school/attendance/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&studentModel.StudentModel{},
		&attModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func createTestStudent(t *testing.T, db *gorm.DB) *studentModel.StudentModel {
	t.Helper()
	s := &studentModel.StudentModel{
		StudentName:       "Test Student",
		StudentRollNumber: "T-" + uuid.NewString()[:8],
		StudentClass:      "7A",
		StudentAge:        12,
		StudentGender:     "male",
		StudentStatus:     studentModel.StatusActive,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return s
}

func newAttendanceApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewAttendanceController(db)
	app.Post("/attendance", ctl.Mark)
	app.Get("/attendance/:id", ctl.GetByID)
	app.Delete("/attendance/:id", ctl.Delete)
	return app
}

func markAttendance(t *testing.T, app *fiber.App, studentID uuid.UUID, date, status string) *http.Response {
	t.Helper()
	body := fmt.Sprintf(`{"attendance_student_id":%q,"attendance_date":%q,"attendance_status":%q}`,
		studentID, date, status)
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

type attendanceEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		AttendanceID     uuid.UUID `json:"attendance_id"`
		AttendanceStatus string    `json:"attendance_status"`
	} `json:"data"`
}

func TestMarkAttendanceTwiceLeavesOneRecord(t *testing.T) {
	db := openTestDB(t)
	s := createTestStudent(t, db)
	app := newAttendanceApp(db)
	const day = "2026-03-10"

	resp1 := markAttendance(t, app, s.StudentID, day, attModel.StatusPresent)
	defer resp1.Body.Close()
	if resp1.StatusCode != http.StatusCreated {
		t.Fatalf("first mark status = %d, want %d", resp1.StatusCode, http.StatusCreated)
	}

	// Second mark for the same day replaces, and says so with a 200.
	resp2 := markAttendance(t, app, s.StudentID, day, attModel.StatusLate)
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("second mark status = %d, want %d", resp2.StatusCode, http.StatusOK)
	}

	var env attendanceEnvelope
	if err := json.NewDecoder(resp2.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.AttendanceStatus != attModel.StatusLate {
		t.Errorf("returned status = %q, want %q", env.Data.AttendanceStatus, attModel.StatusLate)
	}

	var rows []attModel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", s.StudentID).Find(&rows).Error; err != nil {
		t.Fatalf("fetch rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows for (student, date) = %d, want exactly 1", len(rows))
	}
	if rows[0].AttendanceStatus != attModel.StatusLate {
		t.Errorf("persisted status = %q, want %q (second call wins)", rows[0].AttendanceStatus, attModel.StatusLate)
	}
}

func TestDeleteAttendanceFreesTheDaySlot(t *testing.T) {
	db := openTestDB(t)
	s := createTestStudent(t, db)
	app := newAttendanceApp(db)
	const day = "2026-03-11"

	resp := markAttendance(t, app, s.StudentID, day, attModel.StatusAbsent)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("mark status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var env attendanceEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	del, err := app.Test(httptest.NewRequest(http.MethodDelete, "/attendance/"+env.Data.AttendanceID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer del.Body.Close()
	if del.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", del.StatusCode, http.StatusOK)
	}

	get, err := app.Test(httptest.NewRequest(http.MethodGet, "/attendance/"+env.Data.AttendanceID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer get.Body.Close()
	if get.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", get.StatusCode, http.StatusNotFound)
	}

	// The unique (student, date) slot is free again: re-marking creates.
	again := markAttendance(t, app, s.StudentID, day, attModel.StatusPresent)
	defer again.Body.Close()
	if again.StatusCode != http.StatusCreated {
		t.Errorf("re-mark status = %d, want %d", again.StatusCode, http.StatusCreated)
	}
}
