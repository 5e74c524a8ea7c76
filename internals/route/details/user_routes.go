package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "inout_backend/internals/features/users/controller"
)

// Self-service profile (group /api/u, sudah lewat AuthMiddleware+IsEmployee)
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/users/me", ctrl.Me)
	router.Put("/users/me", ctrl.UpdateMe)
}

// Admin user management (group /api/a)
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/employees", ctrl.GetAll)
	router.Get("/employees/:id", ctrl.GetByID)
	router.Post("/employees/bulk-delete", ctrl.BulkDelete)
	router.Post("/employees/bulk-assign", ctrl.BulkAssignLocation)
	router.Put("/employees/:id/employee-id", ctrl.SetEmployeeID)
}
