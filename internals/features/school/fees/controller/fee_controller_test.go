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

	feeModel "sekolahku_backend/internals/features/school/fees/model"
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
		&feeModel.FeeModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGetFeeByID(t *testing.T) {
	db := openTestDB(t)

	s := &studentModel.StudentModel{
		StudentName:       "Test Student",
		StudentRollNumber: "T-" + uuid.NewString()[:8],
		StudentClass:      "9A",
		StudentAge:        15,
		StudentGender:     "male",
		StudentStatus:     studentModel.StatusActive,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	f := &feeModel.FeeModel{
		FeeStudentID:    s.StudentID,
		FeeAmount:       200000,
		FeeTerm:         "Term 2",
		FeeAcademicYear: "2026/2027",
		FeeStatus:       feeModel.StatusPending,
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("create fee: %v", err)
	}

	app := fiber.New()
	ctl := NewFeeController(db)
	app.Get("/fees/:id", ctl.GetByID)

	t.Run("existing fee", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fees/"+f.FeeID.String(), nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		var env struct {
			Data struct {
				FeeAmount float64 `json:"fee_amount"`
				FeeStatus string  `json:"fee_status"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if env.Data.FeeAmount != 200000 || env.Data.FeeStatus != feeModel.StatusPending {
			t.Errorf("body = %+v, want 200000/pending", env.Data)
		}
	})

	t.Run("unknown fee id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fees/"+uuid.NewString(), nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})
}
