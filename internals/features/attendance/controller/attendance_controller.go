package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inout_backend/internals/features/attendance/dto"
	"inout_backend/internals/features/attendance/service"
	locationModel "inout_backend/internals/features/locations/model"
	userModel "inout_backend/internals/features/users/model"
	helper "inout_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService(db)}
}

/* ===================== CHECK-IN / CHECK-OUT ===================== */

// POST /api/u/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	return ctrl.handleCheck(c, true)
}

// POST /api/u/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	return ctrl.handleCheck(c, false)
}

func (ctrl *AttendanceController) handleCheck(c *fiber.Ctx, isCheckIn bool) error {
	var req dto.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	site, err := ctrl.assignedSite(c, user)
	if err != nil {
		return err
	}

	if isCheckIn {
		out, err := ctrl.Service.CheckIn(c.UserContext(), *user, site, req)
		if err != nil {
			return mapAttendanceError(err)
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Check-In Success!", dto.NewAttendanceDayResponse(*out))
	}

	out, err := ctrl.Service.CheckOut(c.UserContext(), *user, site, req)
	if err != nil {
		return mapAttendanceError(err)
	}
	return helper.Success(c, "Check-Out Success!", dto.NewAttendanceDayResponse(*out))
}

/* ===================== TODAY ===================== */

// GET /api/u/attendance/today — record hari ini + aksi yang legal
// (dipakai client untuk enable/disable tombol).
func (ctrl *AttendanceController) Today(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	if user.UserEmployeeID == nil || *user.UserEmployeeID == "" {
		return helper.Success(c, "OK", dto.TodayResponse{
			CanCheckIn:  false,
			CanCheckOut: false,
			StatusText:  "Status: No workplace assigned.",
		})
	}

	rec, err := ctrl.Service.Today(c.UserContext(), *user.UserEmployeeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca absensi hari ini")
	}

	resp := dto.TodayResponse{}
	switch {
	case rec == nil:
		resp.CanCheckIn = true
		resp.StatusText = "Status: Ready to Check-In"
	case !rec.HasCheckedOut():
		day := dto.NewAttendanceDayResponse(*rec)
		resp.Record = &day
		resp.CanCheckOut = true
		resp.StatusText = fmt.Sprintf("Status: Checked In at %s", *rec.AttendanceCheckInTime)
	default:
		day := dto.NewAttendanceDayResponse(*rec)
		resp.Record = &day
		resp.StatusText = fmt.Sprintf("Status: Day Completed (%s)", derefOr(rec.AttendanceTotalHours, "-"))
	}

	return helper.Success(c, "OK", resp)
}

/* ===================== MONTHLY REPORT ===================== */

// GET /api/u/attendance/report?year=&month= — report diri sendiri
func (ctrl *AttendanceController) MyReport(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	if user.UserEmployeeID == nil || *user.UserEmployeeID == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Employee ID belum di-assign admin")
	}
	return ctrl.renderReport(c, *user.UserEmployeeID)
}

// GET /api/a/attendance/report?employee_id=&year=&month= — view admin
func (ctrl *AttendanceController) AdminReport(c *fiber.Ctx) error {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "employee_id wajib diisi")
	}
	return ctrl.renderReport(c, employeeID)
}

func (ctrl *AttendanceController) renderReport(c *fiber.Ctx, employeeID string) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	start, full, err := ctrl.Service.MonthlyReport(c.UserContext(), employeeID, year, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membangun report")
	}

	days := make([]dto.AttendanceDayResponse, 0, len(full))
	for _, rec := range full {
		days = append(days, dto.NewAttendanceDayResponse(rec))
	}

	return helper.Success(c, "OK", dto.MonthlyReportResponse{
		EmployeeID: employeeID,
		Period:     service.MonthLabel(start),
		Days:       days,
	})
}

/* ===================== CSV EXPORT ===================== */

// GET /api/a/attendance/report/export?employee_id=&year=&month=
// Tabel 10 kolom seperti export original.
func (ctrl *AttendanceController) ExportReportCSV(c *fiber.Ctx) error {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "employee_id wajib diisi")
	}
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	start, full, err := ctrl.Service.MonthlyReport(c.UserContext(), employeeID, year, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membangun report")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"Date", "Day", "Check In", "Check Out", "Total Hours",
		"Location", "Distance (m)", "Fingerprint", "GPS", "Status",
	})
	for _, rec := range full {
		dist := ""
		if rec.AttendanceDistanceMeters != nil {
			dist = strconv.FormatFloat(*rec.AttendanceDistanceMeters, 'f', 1, 64)
		}
		_ = w.Write([]string{
			rec.AttendanceDate,
			rec.AttendanceDayOfWeek,
			derefOr(rec.AttendanceCheckInTime, ""),
			derefOr(rec.AttendanceCheckOutTime, ""),
			derefOr(rec.AttendanceTotalHours, ""),
			derefOr(rec.AttendanceLocationName, ""),
			dist,
			strconv.FormatBool(rec.AttendanceFingerprintVerified),
			strconv.FormatBool(rec.AttendanceGpsVerified),
			string(rec.ComputeStatus()),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menulis CSV")
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", employeeID, start.Format("2006-01"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

/* ===================== Helpers ===================== */

func (ctrl *AttendanceController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", uid).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	return &user, nil
}

func (ctrl *AttendanceController) assignedSite(c *fiber.Ctx, user *userModel.UserModel) (*locationModel.LocationModel, error) {
	if user.UserAssignedLocationID == nil {
		return nil, nil // gate yang menolak dengan reason NoSiteAssigned
	}
	var site locationModel.LocationModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("location_id = ?", *user.UserAssignedLocationID).
		First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	return &site, nil
}

func mapAttendanceError(err error) error {
	switch {
	case errors.Is(err, service.ErrNoSiteAssigned):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Error: Office location not assigned.")
	case errors.Is(err, service.ErrEmployeeNotApproved):
		return fiber.NewError(fiber.StatusForbidden, "Akun belum di-approve admin atau belum punya Employee ID")
	case errors.Is(err, service.ErrBiometricFailed):
		return fiber.NewError(fiber.StatusForbidden, "Fingerprint verification failed.")
	case errors.Is(err, service.ErrOutsideGeofence):
		return fiber.NewError(fiber.StatusForbidden, "Access Denied: Not within office range.")
	case errors.Is(err, service.ErrNotCheckedIn):
		return fiber.NewError(fiber.StatusConflict, "Belum check-in hari ini")
	case errors.Is(err, service.ErrAlreadyCheckedOut):
		return fiber.NewError(fiber.StatusConflict, "Hari ini sudah ditutup (sudah check-out)")
	case errors.Is(err, service.ErrInvalidStateTransition):
		return fiber.NewError(fiber.StatusConflict, "Jam check-out lebih kecil dari jam check-in")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
}

func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	year, month := 0, 0
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2200 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
		}
		month = n
	}
	return year, month, nil
}

func derefOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
