package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationController "inout_backend/internals/features/locations/controller"
)

// Site management, admin only (group /api/a)
func LocationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := locationController.NewLocationController(db)

	router.Get("/locations", ctrl.GetAll)
	router.Get("/locations/:id", ctrl.GetByID)
	router.Post("/locations", ctrl.Create)
	router.Put("/locations/:id", ctrl.Update)
	router.Delete("/locations/:id", ctrl.Delete)
}
