package stats

import (
	"gators-academy/backend/internal/domain/booking"
)

// Pure aggregation over booking lists. Callers pass the full
// unfiltered dataset; filtering for display happens elsewhere.

// Compute derives the standard aggregates from a booking list. today
// is a YYYY-MM-DD string compared for equality against each booking's
// day.
func Compute(list []booking.Booking, today string) BookingStats {
	out := BookingStats{
		Total:    len(list),
		ByStatus: map[string]int{},
	}

	seen := map[string]bool{}
	for _, b := range list {
		out.ByStatus[string(b.Status)]++
		if !seen[b.StudentID] {
			seen[b.StudentID] = true
			out.UniqueTrainees++
		}
		if b.Day == today {
			out.Today++
		}
	}
	return out
}

// TodaysConfirmed counts today's sessions the trainer dashboard shows:
// bookings on today with status confirmed.
func TodaysConfirmed(list []booking.Booking, today string) int {
	n := 0
	for _, b := range list {
		if b.Day == today && b.Status == booking.StatusConfirmed {
			n++
		}
	}
	return n
}

// UniqueTrainees counts distinct trainee ids in the list.
func UniqueTrainees(list []booking.Booking) int {
	seen := map[string]bool{}
	for _, b := range list {
		seen[b.StudentID] = true
	}
	return len(seen)
}

// Progress is the trainee's attended share as a percentage: bookings
// with attendance recorded present over all bookings. Zero bookings
// is 0%, never NaN.
func Progress(list []booking.Booking) ProgressReport {
	r := ProgressReport{Total: len(list)}
	if r.Total == 0 {
		return r
	}
	for _, b := range list {
		if b.Attendance == booking.AttendancePresent {
			r.Attended++
		}
	}
	r.Percent = float64(r.Attended) / float64(r.Total) * 100
	return r
}
