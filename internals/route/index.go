package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "inout_backend/internals/middlewares/auth"
	routeDetails "inout_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up ProvisioningRoutes (public)...")
	routeDetails.ProvisioningPublicRoutes(app, db)

	// ===================== PRIVATE (EMPLOYEE) =====================
	log.Println("[INFO] Setting up EMPLOYEE group (/api/u)...")
	employee := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsEmployee(),
	)
	routeDetails.UserRoutes(employee, db)
	routeDetails.AttendanceRoutes(employee, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsAdmin(),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.LocationAdminRoutes(admin, db)
	routeDetails.AttendanceAdminRoutes(admin, db)
	routeDetails.ProvisioningAdminRoutes(admin, db)
}
