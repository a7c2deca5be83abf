package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
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
		&gradeModel.GradeModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGetGradeByID(t *testing.T) {
	db := openTestDB(t)

	s := &studentModel.StudentModel{
		StudentName:       "Test Student",
		StudentRollNumber: "T-" + uuid.NewString()[:8],
		StudentClass:      "8A",
		StudentAge:        14,
		StudentGender:     "female",
		StudentStatus:     studentModel.StatusActive,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	g := &gradeModel.GradeModel{
		GradeStudentID:    s.StudentID,
		GradeSubject:      "Science",
		GradeMarks:        91,
		GradeLetter:       gradeModel.LetterFromMarks(91),
		GradeTerm:         "Term 1",
		GradeAcademicYear: "2026/2027",
	}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("create grade: %v", err)
	}

	app := fiber.New()
	ctl := NewGradeController(db)
	app.Get("/grades/:id", ctl.GetByID)

	t.Run("existing grade", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/grades/"+g.GradeID.String(), nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var env struct {
			Data struct {
				GradeSubject string `json:"grade_subject"`
				GradeLetter  string `json:"grade_letter"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if env.Data.GradeSubject != "Science" || env.Data.GradeLetter != "A+" {
			t.Errorf("body = %+v, want Science/A+", env.Data)
		}
	})

	t.Run("unknown grade id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/grades/"+uuid.NewString(), nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/grades/not-a-uuid", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})
}
