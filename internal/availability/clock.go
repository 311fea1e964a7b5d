package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

const minutesPerHour = 60

// ErrInvalidClock is returned for time-of-day values ParseClock cannot read.
var ErrInvalidClock = errors.New("invalid time of day")

// ParseClock accepts the forms stored by the admin dashboard over the years:
// "9", "09", "9:5", "09:00" and "09:00:00". Seconds are ignored.
func ParseClock(s string) (Minutes, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidClock)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidClock, s)
	}

	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil || minute < 0 || minute > 59 {
			return 0, fmt.Errorf("%w: minute in %q", ErrInvalidClock, s)
		}
	}

	if len(parts) == 3 {
		second, err := strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, fmt.Errorf("%w: second in %q", ErrInvalidClock, s)
		}
	}

	return Minutes(hour*minutesPerHour + minute), nil
}

// FormatClock normalizes a stored value to "HH:MM".
func FormatClock(s string) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/minutesPerHour, int(m)%minutesPerHour)
}
