// internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys populated by the auth middleware.
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocFullName = "full_name"
)

// GetUserIDFromToken returns the authenticated user id stored in Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id missing from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id in token")
	}
	return id, nil
}

// GetRoleFromToken returns the role claim stored in Locals ("" when absent).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

// GetFullNameFromToken returns the full_name claim stored in Locals.
func GetFullNameFromToken(c *fiber.Ctx) string {
	name, _ := c.Locals(LocFullName).(string)
	return name
}
