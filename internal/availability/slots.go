package availability

const DefaultDurationMinutes = 60

// DefaultWindow applies to weekdays that have no operating-hours rows at all.
var DefaultWindow = Window{Start: 9 * minutesPerHour, End: 18 * minutesPerHour}

// Window is one operating-hours rule. It offers a single bookable start: its own Start.
type Window struct {
	Start Minutes
	End   Minutes
}

// Slots returns the start times ("HH:MM") a booking of durationMinutes can take.
//
// With rules, each window yields at most one candidate, its opening time, kept only if
// the booking ends by the window's end. Without rules the default window is swept hourly.
// booked and blocked are tested the same way; output keeps window or hour order.
func Slots(windows []Window, booked, blocked []Interval, durationMinutes int) []string {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}

	slots := []string{}

	accept := func(start Minutes) {
		candidate := NewInterval(start, durationMinutes)
		if overlapsAny(candidate, booked) || overlapsAny(candidate, blocked) {
			return
		}
		slots = append(slots, start.String())
	}

	if len(windows) > 0 {
		for _, w := range windows {
			if w.Start+Minutes(durationMinutes) > w.End {
				continue
			}
			accept(w.Start)
		}
		return slots
	}

	for start := DefaultWindow.Start; start < DefaultWindow.End; start += minutesPerHour {
		if start+Minutes(durationMinutes) > DefaultWindow.End {
			continue
		}
		accept(start)
	}

	return slots
}
