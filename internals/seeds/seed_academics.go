package seeds

import (
	"log"
	"time"

	attModel "sekolahku_backend/internals/features/school/attendance/model"
	feeModel "sekolahku_backend/internals/features/school/fees/model"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	"sekolahku_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	seedTerm = "Term 1"
	seedYear = "2026/2027"
)

var seedSubjects = []string{"Mathematics", "Science", "English"}

// Marks cycle through the list so the demo data covers every letter band.
var seedMarks = []int{95, 82, 74, 63, 55, 41}

var seedAmounts = []float64{150000, 175000, 200000}

// SeedAcademicRecords derives grades, today's attendance, and one fee per
// seeded student. It bails out per-table when rows already exist, so it is
// safe to run on every boot.
func SeedAcademicRecords(db *gorm.DB) {
	var students []studentModel.StudentModel
	if err := db.Order("student_roll_number ASC").Find(&students).Error; err != nil {
		log.Printf("❌ Failed to load students for academic seed: %v", err)
		return
	}
	if len(students) == 0 {
		log.Println("ℹ️ No students found, skipping academic seed.")
		return
	}

	seedGrades(db, students)
	seedAttendance(db, students)
	seedFees(db, students)
}

func seedGrades(db *gorm.DB, students []studentModel.StudentModel) {
	var count int64
	if err := db.Model(&gradeModel.GradeModel{}).Count(&count).Error; err != nil || count > 0 {
		log.Println("ℹ️ Grades already seeded, skipped.")
		return
	}

	var rows []gradeModel.GradeModel
	mi := 0
	for _, s := range students {
		for _, subject := range seedSubjects {
			marks := seedMarks[mi%len(seedMarks)]
			mi++
			rows = append(rows, gradeModel.GradeModel{
				GradeStudentID:    s.StudentID,
				GradeSubject:      subject,
				GradeMarks:        marks,
				GradeLetter:       gradeModel.LetterFromMarks(marks),
				GradeTerm:         seedTerm,
				GradeAcademicYear: seedYear,
			})
		}
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("❌ Failed to seed grades: %v", err)
	} else {
		log.Printf("✅ Seeded %d grades", len(rows))
	}
}

func seedAttendance(db *gorm.DB, students []studentModel.StudentModel) {
	today := dbtime.StartOfDay(time.Now())
	statuses := []string{
		attModel.StatusPresent,
		attModel.StatusPresent,
		attModel.StatusLate,
		attModel.StatusAbsent,
	}

	var rows []attModel.AttendanceModel
	for i, s := range students {
		rows = append(rows, attModel.AttendanceModel{
			AttendanceStudentID: s.StudentID,
			AttendanceDate:      today,
			AttendanceStatus:    statuses[i%len(statuses)],
		})
	}

	// Re-running on the same day is a no-op instead of a constraint error.
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_student_id"}, {Name: "attendance_date"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		log.Printf("❌ Failed to seed attendance: %v", err)
	} else {
		log.Printf("✅ Seeded attendance for %d students", len(rows))
	}
}

func seedFees(db *gorm.DB, students []studentModel.StudentModel) {
	var count int64
	if err := db.Model(&feeModel.FeeModel{}).Count(&count).Error; err != nil || count > 0 {
		log.Println("ℹ️ Fees already seeded, skipped.")
		return
	}

	now := time.Now()
	var rows []feeModel.FeeModel
	for i, s := range students {
		fee := feeModel.FeeModel{
			FeeStudentID:    s.StudentID,
			FeeAmount:       seedAmounts[i%len(seedAmounts)],
			FeeTerm:         seedTerm,
			FeeAcademicYear: seedYear,
			FeeStatus:       feeModel.StatusPending,
		}
		// Every third student has already paid.
		if i%3 == 0 {
			fee.FeeStatus = feeModel.StatusPaid
			fee.FeePaymentDate = &now
		}
		rows = append(rows, fee)
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("❌ Failed to seed fees: %v", err)
	} else {
		log.Printf("✅ Seeded %d fees", len(rows))
	}
}
