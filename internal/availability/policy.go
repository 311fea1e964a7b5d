package availability

import (
	"time"

	"masgolf/internal/domain"
)

// Rejection names the booking-policy gate that closed a date. The zero value admits it.
type Rejection string

const (
	Admitted                 Rejection = ""
	RejectSameDay            Rejection = "same_day_disabled"
	RejectInsufficientNotice Rejection = "insufficient_advance_notice"
	RejectWeekend            Rejection = "weekend_disabled"
)

// Gate checks date against the policy flags. Advance notice is measured between the two
// midnights, not from the current wall-clock time.
func Gate(settings domain.BookingSettings, date, today time.Time) Rejection {
	days := DaysBetween(today, date)

	if settings.DisableSameDayBooking && days == 0 {
		return RejectSameDay
	}

	if days*24 < settings.MinAdvanceHours {
		return RejectInsufficientNotice
	}

	if settings.DisableWeekendBooking && IsWeekend(date) {
		return RejectWeekend
	}

	return Admitted
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days from a to b, ignoring clock time and DST shifts.
func DaysBetween(a, b time.Time) int {
	ac := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bc := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bc.Sub(ac).Hours() / 24)
}
