package helper

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Format tanggal & jam mengikuti shape dokumen attendance:
// dateId = "YYYY-MM-DD" (key record), jam = "HH:MM" local time.
const (
	DateIDLayout = "2006-01-02"
	ClockLayout  = "15:04"
)

var ErrCheckOutBeforeCheckIn = errors.New("check-out time precedes check-in time")

// AppLocation mengambil timezone aplikasi dari APP_TIMEZONE.
// Fallback: Asia/Jakarta, terakhir UTC.
func AppLocation() *time.Location {
	if tz := strings.TrimSpace(os.Getenv("APP_TIMEZONE")); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.UTC
}

// DateID mengembalikan key kalender lokal untuk t.
func DateID(t time.Time) string {
	return t.Format(DateIDLayout)
}

// DayOfWeek label hari (English, e.g. "Monday") — selalu dihitung ulang
// dari tanggal, jangan percaya label yang tersimpan.
func DayOfWeek(t time.Time) string {
	return t.Format("Monday")
}

// DayOfWeekFromDateID menghitung label hari dari dateId "YYYY-MM-DD".
func DayOfWeekFromDateID(dateID string) (string, error) {
	t, err := time.Parse(DateIDLayout, dateID)
	if err != nil {
		return "", err
	}
	return DayOfWeek(t), nil
}

// Clock jam "HH:MM" untuk t.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseClock menerima "HH:MM" atau "HH:MM:SS".
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 5 {
		return time.Parse("15:04:05", s)
	}
	return time.Parse(ClockLayout, s)
}

// CalculateDuration menghitung durasi check-in → check-out di hari yang
// sama, diformat "<H>h <MM>m" (contoh "8h 30m"). Check-out yang secara
// numerik lebih kecil dari check-in adalah error, bukan durasi negatif.
func CalculateDuration(checkIn, checkOut string) (string, error) {
	in, err := ParseClock(checkIn)
	if err != nil {
		return "", fmt.Errorf("invalid check-in time %q: %w", checkIn, err)
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return "", fmt.Errorf("invalid check-out time %q: %w", checkOut, err)
	}

	d := out.Sub(in)
	if d < 0 {
		return "", ErrCheckOutBeforeCheckIn
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, m), nil
}
