package service

import (
	"errors"
	"testing"
	"time"

	"inout_backend/internals/features/attendance/model"
	locationModel "inout_backend/internals/features/locations/model"
	helper "inout_backend/internals/helpers"
)

func testSite() *locationModel.LocationModel {
	return &locationModel.LocationModel{
		LocationName:      "Headquarters",
		LocationLatitude:  10.0,
		LocationLongitude: 10.0,
		LocationRadius:    100.0,
	}
}

func TestVerifyGate(t *testing.T) {
	site := testSite()

	cases := []struct {
		name      string
		site      *locationModel.LocationModel
		lat, lng  float64
		biometric bool
		wantErr   error
	}{
		{name: "at the site", site: site, lat: 10.0, lng: 10.0, biometric: true},
		{name: "just inside radius", site: site, lat: 10.0008, lng: 10.0, biometric: true},
		{name: "outside radius", site: site, lat: 10.01, lng: 10.0, biometric: true, wantErr: ErrOutsideGeofence},
		{name: "biometric failed", site: site, lat: 10.0, lng: 10.0, biometric: false, wantErr: ErrBiometricFailed},
		{name: "no site assigned", site: nil, lat: 10.0, lng: 10.0, biometric: true, wantErr: ErrNoSiteAssigned},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, err := VerifyGate(tc.site, tc.lat, tc.lng, tc.biometric)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dist < 0 || dist > site.LocationRadius {
				t.Fatalf("distance %v outside accepted radius", dist)
			}
		})
	}
}

func TestVerifyGateBoundaryInclusive(t *testing.T) {
	site := testSite()
	// Reading ~100m ke utara site
	lat, lng := 10.0009, 10.0
	dist := helper.Distance(
		helper.Coordinate{Latitude: lat, Longitude: lng},
		helper.Coordinate{Latitude: site.LocationLatitude, Longitude: site.LocationLongitude},
	)

	// Radius == jarak → masih di dalam (boundary inclusive)
	site.LocationRadius = dist
	if _, err := VerifyGate(site, lat, lng, true); err != nil {
		t.Fatalf("distance == radius should be inside, got %v", err)
	}

	// Radius sedikit di bawah jarak → ditolak
	site.LocationRadius = dist - 1
	if _, err := VerifyGate(site, lat, lng, true); !errors.Is(err, ErrOutsideGeofence) {
		t.Fatalf("err = %v, want ErrOutsideGeofence", err)
	}
}

func TestBuildCheckInRecord(t *testing.T) {
	site := testSite()
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC) // Monday

	rec := BuildCheckInRecord("EMP001", "Budi", site, 10.0001, 10.0, 12.5, now)

	if rec.AttendanceRecordID != "EMP001_2026-08-03" {
		t.Fatalf("record id = %q", rec.AttendanceRecordID)
	}
	if rec.AttendanceDate != "2026-08-03" || rec.AttendanceDayOfWeek != "Monday" {
		t.Fatalf("date fields = %q %q", rec.AttendanceDate, rec.AttendanceDayOfWeek)
	}
	if rec.AttendanceCheckInTime == nil || *rec.AttendanceCheckInTime != "09:00" {
		t.Fatalf("check-in time = %v", rec.AttendanceCheckInTime)
	}
	if !rec.AttendanceFingerprintVerified || !rec.AttendanceGpsVerified {
		t.Fatal("verification flags must be true after a successful gate")
	}
	if rec.AttendanceLocationName == nil || *rec.AttendanceLocationName != "Headquarters" {
		t.Fatalf("location name = %v", rec.AttendanceLocationName)
	}
	if rec.AttendanceDistanceMeters == nil || *rec.AttendanceDistanceMeters != 12.5 {
		t.Fatalf("distance = %v", rec.AttendanceDistanceMeters)
	}
	if rec.ComputeStatus() != model.StatusPartial {
		t.Fatalf("fresh check-in should classify Partial, got %v", rec.ComputeStatus())
	}
}

func TestRecordIDIdempotent(t *testing.T) {
	site := testSite()
	now := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 8, 3, 9, 5, 0, 0, time.UTC)

	first := BuildCheckInRecord("EMP001", "Budi", site, 10, 10, 0, now)
	second := BuildCheckInRecord("EMP001", "Budi", site, 10, 10, 0, later)

	// Submit ganda di hari yang sama menarget dokumen yang sama → upsert,
	// bukan duplikat.
	if first.AttendanceRecordID != second.AttendanceRecordID {
		t.Fatalf("same employee+day must map to one record: %q vs %q",
			first.AttendanceRecordID, second.AttendanceRecordID)
	}
}

func TestDecideCheckIn(t *testing.T) {
	in := "09:00"
	out := "17:00"

	if err := DecideCheckIn(&model.AttendanceRecordModel{}); err != nil {
		t.Fatalf("NoRecord → check-in must be legal: %v", err)
	}
	if err := DecideCheckIn(&model.AttendanceRecordModel{AttendanceCheckInTime: &in}); err != nil {
		t.Fatalf("CheckedIn → re-check-in overwrites, must be legal: %v", err)
	}
	err := DecideCheckIn(&model.AttendanceRecordModel{AttendanceCheckInTime: &in, AttendanceCheckOutTime: &out})
	if !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("CheckedOut is terminal, err = %v", err)
	}
}

func TestApplyCheckOut(t *testing.T) {
	in := "09:00"
	day := func(h, m int) time.Time {
		return time.Date(2026, 8, 3, h, m, 0, 0, time.UTC)
	}

	t.Run("happy path computes total hours", func(t *testing.T) {
		rec := model.AttendanceRecordModel{
			AttendanceCheckInTime:         &in,
			AttendanceFingerprintVerified: true,
			AttendanceGpsVerified:         true,
		}
		if err := ApplyCheckOut(&rec, 10.0, 10.0, day(17, 30)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.AttendanceTotalHours == nil || *rec.AttendanceTotalHours != "8h 30m" {
			t.Fatalf("total hours = %v, want 8h 30m", rec.AttendanceTotalHours)
		}
		if rec.AttendanceCheckOutTime == nil || *rec.AttendanceCheckOutTime != "17:30" {
			t.Fatalf("check-out time = %v", rec.AttendanceCheckOutTime)
		}
		if rec.ComputeStatus() != model.StatusPresent {
			t.Fatalf("status = %v, want Present", rec.ComputeStatus())
		}
	})

	t.Run("refused without check-in", func(t *testing.T) {
		rec := model.AttendanceRecordModel{}
		if err := ApplyCheckOut(&rec, 10, 10, day(17, 0)); !errors.Is(err, ErrNotCheckedIn) {
			t.Fatalf("err = %v, want ErrNotCheckedIn", err)
		}
	})

	t.Run("refused after check-out", func(t *testing.T) {
		out := "17:00"
		rec := model.AttendanceRecordModel{AttendanceCheckInTime: &in, AttendanceCheckOutTime: &out}
		if err := ApplyCheckOut(&rec, 10, 10, day(18, 0)); !errors.Is(err, ErrAlreadyCheckedOut) {
			t.Fatalf("err = %v, want ErrAlreadyCheckedOut", err)
		}
	})

	t.Run("check-out before check-in flagged, never negative", func(t *testing.T) {
		rec := model.AttendanceRecordModel{AttendanceCheckInTime: &in}
		err := ApplyCheckOut(&rec, 10, 10, day(8, 0))
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("err = %v, want ErrInvalidStateTransition", err)
		}
		if rec.AttendanceTotalHours != nil {
			t.Fatalf("total hours must stay unset on refusal, got %v", *rec.AttendanceTotalHours)
		}
		if rec.AttendanceCheckOutTime != nil {
			t.Fatal("check-out fields must stay unset on refusal")
		}
	})
}

func TestComputeStatusClassification(t *testing.T) {
	in := "09:00"
	out := "17:00"

	cases := []struct {
		name string
		rec  model.AttendanceRecordModel
		want model.Status
	}{
		{"no record fields", model.AttendanceRecordModel{}, model.StatusAbsent},
		{"check-in only", model.AttendanceRecordModel{
			AttendanceCheckInTime: &in, AttendanceFingerprintVerified: true, AttendanceGpsVerified: true,
		}, model.StatusPartial},
		{"complete and verified", model.AttendanceRecordModel{
			AttendanceCheckInTime: &in, AttendanceCheckOutTime: &out,
			AttendanceFingerprintVerified: true, AttendanceGpsVerified: true,
		}, model.StatusPresent},
		{"complete but gps flag false", model.AttendanceRecordModel{
			AttendanceCheckInTime: &in, AttendanceCheckOutTime: &out,
			AttendanceFingerprintVerified: true,
		}, model.StatusPartial},
		{"complete but fingerprint flag false", model.AttendanceRecordModel{
			AttendanceCheckInTime: &in, AttendanceCheckOutTime: &out,
			AttendanceGpsVerified: true,
		}, model.StatusPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.ComputeStatus(); got != tc.want {
				t.Fatalf("status = %v, want %v", got, tc.want)
			}
		})
	}
}
