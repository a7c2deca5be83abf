package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds populates demo data in dependency order. Every seeder is
// idempotent, so running the binary twice with RUN_SEEDS=true is safe.
func RunAllSeeds(db *gorm.DB) {
	SeedUsersFromJSON(db, "internals/seeds/data/data_users.json")
	SeedStudentsFromJSON(db, "internals/seeds/data/data_students.json")
	SeedAcademicRecords(db)
}
