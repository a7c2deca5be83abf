// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

var validateAuth = validator.New()

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	req.UserFullName = strings.TrimSpace(req.UserFullName)

	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role := req.UserRole
	if role == "" {
		role = constants.RoleTeacher
	}

	passwordHash, err := HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserFullName: req.UserFullName,
		UserEmail:    req.UserEmail,
		UserPassword: passwordHash,
		UserRole:     role,
	}

	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := SignAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}

	return helper.JsonCreated(c, "Registration successful", authDTO.AuthResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(&user),
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Same generic message for unknown email and wrong password.
	var user userModel.UserModel
	if err := db.Where("user_email = ?", req.UserEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if err := CheckPasswordHash(user.UserPassword, req.UserPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := SignAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(&user),
	})
}

/* ==========================
   LOGOUT
========================== */

// Tokens are stateless and remain valid until expiry; logout is an
// acknowledgement so clients can drop the token uniformly.
func Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logout successful", nil)
}
