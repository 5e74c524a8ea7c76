package model

import (
	"fmt"
	"time"
)

// Status turunan dari field record — tidak pernah disimpan, selalu
// dihitung ulang lewat ComputeStatus supaya tidak ada dua code path
// yang beda klasifikasi.
type Status string

const (
	StatusPresent Status = "Present"
	StatusPartial Status = "Partial"
	StatusAbsent  Status = "Absent"
)

// AttendanceRecordModel = satu record per employee per hari kalender.
// Primary key deterministik employeeId_YYYY-MM-DD; check-in ulang di hari
// yang sama menimpa dokumen yang sama, bukan bikin duplikat.
type AttendanceRecordModel struct {
	AttendanceRecordID     string `gorm:"primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceEmployeeID   string `gorm:"not null;index;column:attendance_employee_id" json:"attendance_employee_id"`
	AttendanceEmployeeName string `gorm:"column:attendance_employee_name" json:"attendance_employee_name"`

	AttendanceDate      string `gorm:"not null;index;column:attendance_date" json:"attendance_date"` // YYYY-MM-DD
	AttendanceDayOfWeek string `gorm:"column:attendance_day_of_week" json:"attendance_day_of_week"`  // derived, not authoritative

	AttendanceCheckInTime *string  `gorm:"column:attendance_check_in_time" json:"attendance_check_in_time,omitempty"` // HH:MM
	AttendanceCheckInLat  *float64 `gorm:"column:attendance_check_in_lat" json:"attendance_check_in_lat,omitempty"`
	AttendanceCheckInLng  *float64 `gorm:"column:attendance_check_in_lng" json:"attendance_check_in_lng,omitempty"`

	AttendanceCheckOutTime *string  `gorm:"column:attendance_check_out_time" json:"attendance_check_out_time,omitempty"`
	AttendanceCheckOutLat  *float64 `gorm:"column:attendance_check_out_lat" json:"attendance_check_out_lat,omitempty"`
	AttendanceCheckOutLng  *float64 `gorm:"column:attendance_check_out_lng" json:"attendance_check_out_lng,omitempty"`

	AttendanceTotalHours     *string  `gorm:"column:attendance_total_hours" json:"attendance_total_hours,omitempty"` // "<H>h <MM>m", diisi saat check-out
	AttendanceLocationName   *string  `gorm:"column:attendance_location_name" json:"attendance_location_name,omitempty"`
	AttendanceDistanceMeters *float64 `gorm:"column:attendance_distance_meters" json:"attendance_distance_meters,omitempty"`

	AttendanceFingerprintVerified bool `gorm:"not null;default:false;column:attendance_fingerprint_verified" json:"attendance_fingerprint_verified"`
	AttendanceGpsVerified         bool `gorm:"not null;default:false;column:attendance_gps_verified" json:"attendance_gps_verified"`

	AttendanceTimestamp int64 `gorm:"column:attendance_timestamp" json:"attendance_timestamp"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

// RecordID membentuk key deterministik employeeId_dateId.
func RecordID(employeeID, dateID string) string {
	return fmt.Sprintf("%s_%s", employeeID, dateID)
}

// ComputeStatus — satu-satunya klasifikasi Present/Partial/Absent.
// Present: check-in + check-out ada dan kedua flag verifikasi true.
// Partial: check-in ada tapi kondisi Present tidak terpenuhi.
// Absent:  tidak ada check-in (termasuk record synthesized).
func (m *AttendanceRecordModel) ComputeStatus() Status {
	if m == nil || m.AttendanceCheckInTime == nil || *m.AttendanceCheckInTime == "" {
		return StatusAbsent
	}
	if m.AttendanceCheckOutTime != nil && *m.AttendanceCheckOutTime != "" &&
		m.AttendanceFingerprintVerified && m.AttendanceGpsVerified {
		return StatusPresent
	}
	return StatusPartial
}

// HasCheckedOut true kalau hari sudah ditutup (terminal untuk hari itu).
func (m *AttendanceRecordModel) HasCheckedOut() bool {
	return m != nil && m.AttendanceCheckOutTime != nil && *m.AttendanceCheckOutTime != ""
}

// HasCheckedIn true kalau sudah ada check-in.
func (m *AttendanceRecordModel) HasCheckedIn() bool {
	return m != nil && m.AttendanceCheckInTime != nil && *m.AttendanceCheckInTime != ""
}
