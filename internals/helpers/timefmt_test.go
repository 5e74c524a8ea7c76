package helper

import (
	"errors"
	"testing"
	"time"
)

func TestCalculateDuration(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		want     string
		wantErr  bool
		errMatch error
	}{
		{name: "full workday", in: "09:00", out: "17:30", want: "8h 30m"},
		{name: "zero duration", in: "09:00", out: "09:00", want: "0h 00m"},
		{name: "single minute", in: "09:00", out: "09:01", want: "0h 01m"},
		{name: "with seconds", in: "08:15:00", out: "16:45:30", want: "8h 30m"},
		{name: "checkout before checkin", in: "17:00", out: "09:00", wantErr: true, errMatch: ErrCheckOutBeforeCheckIn},
		{name: "garbage checkin", in: "klaar", out: "09:00", wantErr: true},
		{name: "garbage checkout", in: "09:00", out: "later", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateDuration(tc.in, tc.out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if tc.errMatch != nil && !errors.Is(err, tc.errMatch) {
					t.Fatalf("error = %v, want %v", err, tc.errMatch)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("duration = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDateIDAndDayOfWeek(t *testing.T) {
	d := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	if got := DateID(d); got != "2026-08-29" {
		t.Fatalf("DateID = %q", got)
	}
	if got := DayOfWeek(d); got != "Saturday" {
		t.Fatalf("DayOfWeek = %q", got)
	}

	got, err := DayOfWeekFromDateID("2026-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Thursday" {
		t.Fatalf("DayOfWeekFromDateID = %q", got)
	}

	if _, err := DayOfWeekFromDateID("bukan-tanggal"); err == nil {
		t.Fatal("expected parse error")
	}
}
