package availability

// Interval is a half-open range [Start, End) of minutes since midnight.
type Interval struct {
	Start Minutes
	End   Minutes
}

// NewInterval covers durationMinutes starting at start.
func NewInterval(start Minutes, durationMinutes int) Interval {
	return Interval{Start: start, End: start + Minutes(durationMinutes)}
}

// Overlaps is false for ranges that only touch.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
