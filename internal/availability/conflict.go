package availability

import (
	"masgolf/internal/domain"
)

// BookingConflict reports whether candidate overlaps one of the occupying bookings in
// existing. The candidate itself (same non-zero ID) is ignored, as are cancelled rows and
// rows with malformed times, so the check agrees with what the calculator counts as busy.
func BookingConflict(candidate domain.Booking, existing []domain.Booking) (bool, error) {
	start, err := ParseClock(candidate.Time)
	if err != nil {
		return false, err
	}
	want := NewInterval(start, bookingDuration(candidate.DurationMinutes))

	for _, b := range existing {
		if candidate.ID != 0 && b.ID == candidate.ID {
			continue
		}
		if !b.Status.Occupies() {
			continue
		}
		other, err := ParseClock(b.Time)
		if err != nil {
			continue
		}
		if want.Overlaps(NewInterval(other, bookingDuration(b.DurationMinutes))) {
			return true, nil
		}
	}

	return false, nil
}

func bookingDuration(minutes int) int {
	if minutes > 0 {
		return minutes
	}
	return DefaultDurationMinutes
}
