package seeds

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/constants"
	authService "sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

type UserSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped.", data.Email)
			continue
		}

		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}

		// Seed files bypass the request validators, so check the role here.
		role := data.Role
		if !constants.IsValidRole(role) {
			log.Printf("⚠️ Unknown role '%s' for '%s', using '%s'.", role, data.Email, constants.RoleTeacher)
			role = constants.RoleTeacher
		}

		newUser := model.UserModel{
			UserFullName: data.FullName,
			UserEmail:    data.Email,
			UserPassword: hashed,
			UserRole:     role,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.Email)
		}
	}
}
