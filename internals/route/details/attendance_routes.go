package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "inout_backend/internals/features/attendance/controller"
)

// Employee surface: absen + report diri sendiri (group /api/u)
func AttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Get("/attendance/today", ctrl.Today)
	router.Post("/attendance/check-in", ctrl.CheckIn)
	router.Post("/attendance/check-out", ctrl.CheckOut)
	router.Get("/attendance/report", ctrl.MyReport)
}

// Admin surface: report semua employee + export CSV (group /api/a)
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Get("/attendance/report", ctrl.AdminReport)
	router.Get("/attendance/report/export", ctrl.ExportReportCSV)
}
