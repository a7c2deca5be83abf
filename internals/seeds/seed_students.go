package seeds

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/school/students/model"

	"gorm.io/gorm"
)

type StudentSeed struct {
	Name         string  `json:"name"`
	RollNumber   string  `json:"roll_number"`
	Class        string  `json:"class"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	GuardianName *string `json:"guardian_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Status       string  `json:"status"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading student seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_roll_number = ?", data.RollNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Student '%s' already exists, skipped.", data.RollNumber)
			continue
		}

		status := data.Status
		if status == "" {
			status = model.StatusActive
		}

		newStudent := model.StudentModel{
			StudentName:         data.Name,
			StudentRollNumber:   data.RollNumber,
			StudentClass:        data.Class,
			StudentAge:          data.Age,
			StudentGender:       data.Gender,
			StudentGuardianName: data.GuardianName,
			StudentContactPhone: data.ContactPhone,
			StudentAddress:      data.Address,
			StudentStatus:       status,
		}

		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Failed to insert student '%s': %v", data.RollNumber, err)
		} else {
			log.Printf("✅ Inserted student '%s' (%s)", data.Name, data.RollNumber)
		}
	}
}
