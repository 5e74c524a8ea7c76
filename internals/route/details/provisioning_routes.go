package details

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inout_backend/internals/configs"
	provisioningController "inout_backend/internals/features/provisioning/controller"
	provisioningService "inout_backend/internals/features/provisioning/service"
	"inout_backend/internals/middlewares"
)

// Tanpa PROVISIONING_SECRET codec tidak bisa dibuat — route provisioning
// dimatikan, bukan setengah jalan.
func newProvisioningController(db *gorm.DB) *provisioningController.ProvisioningController {
	codec, err := provisioningService.NewCodec(configs.ProvisioningSecret)
	if err != nil {
		log.Println("[WARNING] Provisioning routes disabled:", err)
		return nil
	}
	svc := provisioningService.NewProvisioningService(db, codec)
	return provisioningController.NewProvisioningController(db, svc)
}

// Endpoint publik yang dipanggil device saat scan QR
func ProvisioningPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := newProvisioningController(db)
	if ctrl == nil {
		return
	}
	app.Post("/api/provision", middlewares.ProvisionRateLimiter(), ctrl.Provision)
}

// Admin: mint token + daftar tenant config (group /api/a)
func ProvisioningAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := newProvisioningController(db)
	if ctrl == nil {
		return
	}

	router.Get("/provisioning/configs", ctrl.ListConfigs)
	router.Post("/provisioning/token", ctrl.IssueToken)
}
