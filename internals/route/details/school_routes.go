// internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "sekolahku_backend/internals/features/school/attendance/controller"
	feeCtl "sekolahku_backend/internals/features/school/fees/controller"
	gradeCtl "sekolahku_backend/internals/features/school/grades/controller"
	studentCtl "sekolahku_backend/internals/features/school/students/controller"
)

// Mounted under /api (already behind the auth middleware).
func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	students := studentCtl.NewStudentController(db)
	grades := gradeCtl.NewGradeController(db)
	attendance := attCtl.NewAttendanceController(db)
	fees := feeCtl.NewFeeController(db)

	s := r.Group("/students")
	s.Get("/", students.List)
	s.Post("/", students.Create)
	s.Post("/bulk", students.BulkCreate)
	s.Get("/:id", students.GetByID)
	s.Put("/:id", students.Update)
	s.Delete("/:id", students.Delete)

	g := r.Group("/grades")
	g.Get("/", grades.List)
	g.Post("/", grades.Create)
	g.Get("/all", grades.ListAll)
	g.Get("/student/:id", grades.ListByStudent)
	g.Get("/:id", grades.GetByID)
	g.Put("/:id", grades.Update)
	g.Delete("/:id", grades.Delete)

	a := r.Group("/attendance")
	a.Get("/", attendance.List)
	a.Post("/", attendance.Mark)
	a.Get("/stats", attendance.Stats)
	a.Get("/student/:id", attendance.ListByStudent)
	a.Get("/:id", attendance.GetByID)
	a.Delete("/:id", attendance.Delete)

	f := r.Group("/fees")
	f.Get("/", fees.List)
	f.Post("/", fees.Create)
	f.Get("/student/:id", fees.ListByStudent)
	f.Get("/:id", fees.GetByID)
	f.Put("/:id", fees.Update)
	f.Delete("/:id", fees.Delete)
}
