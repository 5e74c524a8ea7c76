package service

import (
	"testing"
	"time"

	"inout_backend/internals/features/attendance/model"
)

func TestMonthPeriod(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want int
	}{
		{"31-day month", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 31},
		{"30-day month", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 30},
		{"february", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), 28},
		{"leap february", time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC), 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, days := MonthPeriod(tc.in)
			if days != tc.want {
				t.Fatalf("days = %d, want %d", days, tc.want)
			}
			if start.Day() != 1 || start.Month() != tc.in.Month() || start.Year() != tc.in.Year() {
				t.Fatalf("start = %v", start)
			}
		})
	}
}

func TestBuildPeriodReportAllAbsent(t *testing.T) {
	// Employee tanpa record sama sekali → 30 hari, semua Absent.
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	full := BuildPeriodReport(map[string]model.AttendanceRecordModel{}, start, 30)

	if len(full) != 30 {
		t.Fatalf("len = %d, want exactly 30", len(full))
	}
	for i, rec := range full {
		if rec.ComputeStatus() != model.StatusAbsent {
			t.Fatalf("day %d status = %v, want Absent", i+1, rec.ComputeStatus())
		}
		if rec.AttendanceDate == "" || rec.AttendanceDayOfWeek == "" {
			t.Fatalf("day %d missing date/dayOfWeek", i+1)
		}
	}
}

func TestBuildPeriodReportMergesAndRecomputesDayOfWeek(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) // Saturday
	in := "09:00"
	out := "17:30"
	hours := "8h 30m"

	stored := map[string]model.AttendanceRecordModel{
		"2026-08-03": {
			AttendanceRecordID:            "EMP001_2026-08-03",
			AttendanceEmployeeID:          "EMP001",
			AttendanceDate:                "2026-08-03",
			AttendanceDayOfWeek:           "Friday", // label basi, harus dihitung ulang
			AttendanceCheckInTime:         &in,
			AttendanceCheckOutTime:        &out,
			AttendanceTotalHours:          &hours,
			AttendanceFingerprintVerified: true,
			AttendanceGpsVerified:         true,
		},
		"2026-08-05": {
			AttendanceRecordID:   "EMP001_2026-08-05",
			AttendanceEmployeeID: "EMP001",
			AttendanceDate:       "2026-08-05",
			AttendanceCheckInTime: &in,
		},
	}

	full := BuildPeriodReport(stored, start, 31)
	if len(full) != 31 {
		t.Fatalf("len = %d, want 31", len(full))
	}

	// Ascending & rapat: hari ke-i = start + i
	prev := ""
	for i, rec := range full {
		want := start.AddDate(0, 0, i).Format("2006-01-02")
		if rec.AttendanceDate != want {
			t.Fatalf("day %d date = %q, want %q", i, rec.AttendanceDate, want)
		}
		if prev != "" && rec.AttendanceDate <= prev {
			t.Fatalf("dates not strictly ascending at %d", i)
		}
		prev = rec.AttendanceDate
	}

	// 2026-08-03 adalah Monday; label tersimpan "Friday" harus tertimpa.
	third := full[2]
	if third.AttendanceDayOfWeek != "Monday" {
		t.Fatalf("recomputed dayOfWeek = %q, want Monday", third.AttendanceDayOfWeek)
	}
	if third.ComputeStatus() != model.StatusPresent {
		t.Fatalf("stored complete record status = %v, want Present", third.ComputeStatus())
	}

	fifth := full[4]
	if fifth.ComputeStatus() != model.StatusPartial {
		t.Fatalf("check-in-only record status = %v, want Partial", fifth.ComputeStatus())
	}

	if full[1].ComputeStatus() != model.StatusAbsent {
		t.Fatalf("gap day status = %v, want Absent", full[1].ComputeStatus())
	}
}

func TestBuildPeriodReportArbitraryPeriod(t *testing.T) {
	// Engine parameterizable: periode tidak harus bulan kalender.
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	full := BuildPeriodReport(nil, start, 7)

	if len(full) != 7 {
		t.Fatalf("len = %d, want 7", len(full))
	}
	if full[0].AttendanceDate != "2026-03-15" || full[6].AttendanceDate != "2026-03-21" {
		t.Fatalf("period bounds = %q .. %q", full[0].AttendanceDate, full[6].AttendanceDate)
	}
}

func TestMonthLabel(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthLabel(start); got != "January 2026" {
		t.Fatalf("label = %q", got)
	}
}
