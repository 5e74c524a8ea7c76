package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "inout_backend/internals/features/auth/service"
	"inout_backend/internals/middlewares"
)

// Route publik: register/login/logout. Login & register dibatasi rate
// limiter sendiri (brute-force surface).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	auth.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	auth.Post("/login-google", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.LoginGoogle(db, c)
	})
	auth.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
}
