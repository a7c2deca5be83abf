// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "sekolahku_backend/internals/features/users/auth/service"
	middlewares "sekolahku_backend/internals/middlewares"
)

// Public routes: the only surface reachable without a bearer token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	app.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	app.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(c)
	})
}
