package service

import (
	"context"
	"time"

	"inout_backend/internals/features/attendance/model"
	helper "inout_backend/internals/helpers"
)

// Reconciliation: merge record tersimpan (sparse) dengan kalender periode
// jadi sequence rapat tanpa gap. Hari tanpa record disintesis hanya dengan
// date + dayOfWeek sehingga terklasifikasi Absent. Panjang output selalu
// persis jumlah hari periode — invariant, bukan best effort.

// MonthPeriod: tanggal 1 + jumlah hari bulan kalender yang memuat t.
func MonthPeriod(t time.Time) (time.Time, int) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := start.AddDate(0, 1, -1).Day() // 28..31
	return start, days
}

// BuildPeriodReport mensintesis report rapat untuk periode eksplisit
// (start + dayCount). Record tersimpan dipakai apa adanya kecuali label
// hari yang selalu dihitung ulang dari tanggal (label tersimpan bisa basi).
func BuildPeriodReport(records map[string]model.AttendanceRecordModel, start time.Time, dayCount int) []model.AttendanceRecordModel {
	full := make([]model.AttendanceRecordModel, 0, dayCount)

	day := start
	for i := 0; i < dayCount; i++ {
		dateID := helper.DateID(day)
		dayName := helper.DayOfWeek(day)

		if rec, ok := records[dateID]; ok {
			rec.AttendanceDayOfWeek = dayName
			full = append(full, rec)
		} else {
			full = append(full, model.AttendanceRecordModel{
				AttendanceDate:      dateID,
				AttendanceDayOfWeek: dayName,
			})
		}

		day = day.AddDate(0, 0, 1)
	}

	return full
}

// MonthLabel untuk header report, contoh "January 2026".
func MonthLabel(start time.Time) string {
	return start.Format("January 2006")
}

// MonthlyReport membaca record satu employee untuk satu bulan kalender
// lalu me-reconcile. year/month 0 = bulan berjalan (behavior original).
// Read-only dan point-in-time; aman jalan barengan dengan write.
func (s *AttendanceService) MonthlyReport(ctx context.Context, employeeID string, year, month int) (time.Time, []model.AttendanceRecordModel, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc())
	start, days := MonthPeriod(anchor)
	end := start.AddDate(0, 0, days-1)

	var rows []model.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", helper.DateID(start), helper.DateID(end)).
		Find(&rows).Error; err != nil {
		return start, nil, err
	}

	byDate := make(map[string]model.AttendanceRecordModel, len(rows))
	for _, r := range rows {
		byDate[r.AttendanceDate] = r
	}

	return start, BuildPeriodReport(byDate, start, days), nil
}
