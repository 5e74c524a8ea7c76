package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inout_backend/internals/features/attendance/dto"
	"inout_backend/internals/features/attendance/model"
	locationModel "inout_backend/internals/features/locations/model"
	userModel "inout_backend/internals/features/users/model"
	helper "inout_backend/internals/helpers"
)

// AttendanceService menjalankan state machine harian:
// NoRecord → CheckedIn → CheckedOut (terminal untuk hari itu).
// State dibaca ulang di dalam transaksi (row lock) sebelum transisi
// diputuskan — jangan pernah memutuskan dari state cache yang basi.
type AttendanceService struct {
	DB  *gorm.DB
	Now func() time.Time
	Loc *time.Location
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, Now: time.Now, Loc: helper.AppLocation()}
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.loc())
	}
	return time.Now().In(s.loc())
}

func (s *AttendanceService) loc() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.Local
}

/* =========================================================
 * Pure transition logic (tanpa DB, gampang dites)
 * ========================================================= */

// VerifyGate menjalankan gate verifikasi yang sama untuk check-in dan
// check-out: site harus ada, biometrik lolos, lalu geofence. Tiap
// kegagalan punya error sendiri. Mengembalikan jarak ke site (meter).
func VerifyGate(site *locationModel.LocationModel, lat, lng float64, biometricPassed bool) (float64, error) {
	if site == nil {
		return 0, ErrNoSiteAssigned
	}
	if !biometricPassed {
		return 0, ErrBiometricFailed
	}

	current := helper.Coordinate{Latitude: lat, Longitude: lng}
	target := helper.Coordinate{Latitude: site.LocationLatitude, Longitude: site.LocationLongitude}
	dist := helper.Distance(current, target)
	if dist > site.LocationRadius {
		return dist, ErrOutsideGeofence
	}
	return dist, nil
}

// DecideCheckIn menolak check-in kalau hari sudah ditutup. Check-in
// ulang saat masih CheckedIn diperbolehkan: key deterministik bikin
// write-nya idempoten (menimpa record yang sama).
func DecideCheckIn(existing *model.AttendanceRecordModel) error {
	if existing.HasCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	return nil
}

// BuildCheckInRecord membangun record check-in lengkap. Kedua flag
// verifikasi hanya di-set true di sini, setelah gate sukses.
func BuildCheckInRecord(employeeID, employeeName string, site *locationModel.LocationModel, lat, lng, distance float64, now time.Time) model.AttendanceRecordModel {
	dateID := helper.DateID(now)
	clock := helper.Clock(now)
	locName := site.LocationName

	return model.AttendanceRecordModel{
		AttendanceRecordID:     model.RecordID(employeeID, dateID),
		AttendanceEmployeeID:   employeeID,
		AttendanceEmployeeName: employeeName,
		AttendanceDate:         dateID,
		AttendanceDayOfWeek:    helper.DayOfWeek(now),

		AttendanceCheckInTime: &clock,
		AttendanceCheckInLat:  &lat,
		AttendanceCheckInLng:  &lng,

		AttendanceLocationName:   &locName,
		AttendanceDistanceMeters: &distance,

		AttendanceFingerprintVerified: true,
		AttendanceGpsVerified:         true,

		AttendanceTimestamp: now.UnixMilli(),
	}
}

// ApplyCheckOut memutasi record CheckedIn → CheckedOut dan menghitung
// total hours. Check-out tanpa check-in atau setelah check-out ditolak;
// jam check-out < check-in = ErrInvalidStateTransition, bukan durasi
// negatif.
func ApplyCheckOut(rec *model.AttendanceRecordModel, lat, lng float64, now time.Time) error {
	if !rec.HasCheckedIn() {
		return ErrNotCheckedIn
	}
	if rec.HasCheckedOut() {
		return ErrAlreadyCheckedOut
	}

	clock := helper.Clock(now)
	total, err := helper.CalculateDuration(*rec.AttendanceCheckInTime, clock)
	if err != nil {
		if errors.Is(err, helper.ErrCheckOutBeforeCheckIn) {
			return ErrInvalidStateTransition
		}
		return err
	}

	rec.AttendanceCheckOutTime = &clock
	rec.AttendanceCheckOutLat = &lat
	rec.AttendanceCheckOutLng = &lng
	rec.AttendanceTotalHours = &total
	return nil
}

/* =========================================================
 * Orchestration (DB)
 * ========================================================= */

// CheckIn menjalankan gate + transisi NoRecord/CheckedIn → CheckedIn.
// Upsert by primary key: submit ganda konvergen ke satu record.
func (s *AttendanceService) CheckIn(ctx context.Context, user userModel.UserModel, site *locationModel.LocationModel, req dto.CheckRequest) (*model.AttendanceRecordModel, error) {
	if !user.UserApproved || user.UserEmployeeID == nil || *user.UserEmployeeID == "" {
		return nil, ErrEmployeeNotApproved
	}
	employeeID := *user.UserEmployeeID

	dist, err := VerifyGate(site, req.Latitude, req.Longitude, req.BiometricPassed)
	if err != nil {
		return nil, err
	}

	now := s.now()
	recID := model.RecordID(employeeID, helper.DateID(now))

	var out model.AttendanceRecordModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceRecordModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_record_id = ?", recID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if derr := DecideCheckIn(&existing); derr != nil {
				return derr
			}
		}

		rec := BuildCheckInRecord(employeeID, user.UserName, site, req.Latitude, req.Longitude, dist, now)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attendance_record_id"}},
			UpdateAll: true,
		}).Create(&rec).Error; err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckOut menjalankan gate yang sama lalu transisi CheckedIn → CheckedOut.
func (s *AttendanceService) CheckOut(ctx context.Context, user userModel.UserModel, site *locationModel.LocationModel, req dto.CheckRequest) (*model.AttendanceRecordModel, error) {
	if !user.UserApproved || user.UserEmployeeID == nil || *user.UserEmployeeID == "" {
		return nil, ErrEmployeeNotApproved
	}
	employeeID := *user.UserEmployeeID

	if _, err := VerifyGate(site, req.Latitude, req.Longitude, req.BiometricPassed); err != nil {
		return nil, err
	}

	now := s.now()
	recID := model.RecordID(employeeID, helper.DateID(now))

	var out model.AttendanceRecordModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceRecordModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("attendance_record_id = ?", recID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotCheckedIn
			}
			return err
		}

		if err := ApplyCheckOut(&existing, req.Latitude, req.Longitude, now); err != nil {
			return err
		}
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		out = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Today membaca record hari ini (nil kalau belum ada).
func (s *AttendanceService) Today(ctx context.Context, employeeID string) (*model.AttendanceRecordModel, error) {
	recID := model.RecordID(employeeID, helper.DateID(s.now()))

	var rec model.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_record_id = ?", recID).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
