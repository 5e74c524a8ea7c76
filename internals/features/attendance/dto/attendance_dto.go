// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	m "inout_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Check-in / check-out (JSON). Koordinat tidak divalidasi range —
// pembacaan di luar WGS84 tetap menghasilkan jarak numerik.
type CheckRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Hasil gate biometrik di device (sensor = black box eksternal)
	BiometricPassed bool `json:"biometric_passed"`
}

// Filter report bulanan (query)
type MonthlyReportRequest struct {
	EmployeeID *string `query:"employee_id" validate:"omitempty,min=1"`
	Year       *int    `query:"year" validate:"omitempty,min=2000,max=2200"`
	Month      *int    `query:"month" validate:"omitempty,min=1,max=12"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceDayResponse struct {
	AttendanceRecordID   string  `json:"attendance_record_id,omitempty"`
	AttendanceEmployeeID string  `json:"attendance_employee_id,omitempty"`
	AttendanceDate       string  `json:"attendance_date"`
	AttendanceDayOfWeek  string  `json:"attendance_day_of_week"`

	AttendanceCheckInTime  *string  `json:"attendance_check_in_time,omitempty"`
	AttendanceCheckInLat   *float64 `json:"attendance_check_in_lat,omitempty"`
	AttendanceCheckInLng   *float64 `json:"attendance_check_in_lng,omitempty"`
	AttendanceCheckOutTime *string  `json:"attendance_check_out_time,omitempty"`
	AttendanceCheckOutLat  *float64 `json:"attendance_check_out_lat,omitempty"`
	AttendanceCheckOutLng  *float64 `json:"attendance_check_out_lng,omitempty"`

	AttendanceTotalHours     *string  `json:"attendance_total_hours,omitempty"`
	AttendanceLocationName   *string  `json:"attendance_location_name,omitempty"`
	AttendanceDistanceMeters *float64 `json:"attendance_distance_meters,omitempty"`

	AttendanceFingerprintVerified bool `json:"attendance_fingerprint_verified"`
	AttendanceGpsVerified         bool `json:"attendance_gps_verified"`

	// Derived, tidak pernah disimpan
	AttendanceStatus m.Status `json:"attendance_status"`
}

type TodayResponse struct {
	Record      *AttendanceDayResponse `json:"record,omitempty"`
	CanCheckIn  bool                   `json:"can_check_in"`
	CanCheckOut bool                   `json:"can_check_out"`
	StatusText  string                 `json:"status_text"`
}

type MonthlyReportResponse struct {
	EmployeeID string                  `json:"employee_id"`
	Period     string                  `json:"period"` // "January 2026"
	Days       []AttendanceDayResponse `json:"days"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NewAttendanceDayResponse(mdl m.AttendanceRecordModel) AttendanceDayResponse {
	return AttendanceDayResponse{
		AttendanceRecordID:   mdl.AttendanceRecordID,
		AttendanceEmployeeID: mdl.AttendanceEmployeeID,
		AttendanceDate:       mdl.AttendanceDate,
		AttendanceDayOfWeek:  mdl.AttendanceDayOfWeek,

		AttendanceCheckInTime:  mdl.AttendanceCheckInTime,
		AttendanceCheckInLat:   mdl.AttendanceCheckInLat,
		AttendanceCheckInLng:   mdl.AttendanceCheckInLng,
		AttendanceCheckOutTime: mdl.AttendanceCheckOutTime,
		AttendanceCheckOutLat:  mdl.AttendanceCheckOutLat,
		AttendanceCheckOutLng:  mdl.AttendanceCheckOutLng,

		AttendanceTotalHours:     mdl.AttendanceTotalHours,
		AttendanceLocationName:   mdl.AttendanceLocationName,
		AttendanceDistanceMeters: mdl.AttendanceDistanceMeters,

		AttendanceFingerprintVerified: mdl.AttendanceFingerprintVerified,
		AttendanceGpsVerified:         mdl.AttendanceGpsVerified,

		AttendanceStatus: mdl.ComputeStatus(),
	}
}
