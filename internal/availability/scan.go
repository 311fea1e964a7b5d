package availability

import (
	"context"
	"time"

	"masgolf/internal/domain"
)

// DayFunc computes the open start times of a single date.
type DayFunc func(ctx context.Context, date time.Time) ([]string, error)

type ScanResult struct {
	Date  time.Time
	Times []string
}

// EffectiveMaxAdvanceDays bounds the configured horizon by the deployment's hard cap.
func EffectiveMaxAdvanceDays(settings domain.BookingSettings, hardCap int) int {
	days := settings.MaxAdvanceDays
	if days < 0 {
		days = 0
	}
	if hardCap > 0 && days > hardCap {
		days = hardCap
	}
	return days
}

// FirstScanDate is where a scan without an explicit start date begins.
func FirstScanDate(settings domain.BookingSettings, today time.Time) time.Time {
	if settings.DisableSameDayBooking {
		return today.AddDate(0, 0, 1)
	}

	days := 0
	if settings.MinAdvanceHours > 0 {
		days = (settings.MinAdvanceHours + 23) / 24
	}
	return today.AddDate(0, 0, days)
}

// Scan walks dates one by one from the start date and returns the first date for which
// day reports at least one open time. Errors from day abort the scan.
func Scan(ctx context.Context, settings domain.BookingSettings, today time.Time, from *time.Time, hardCap int, day DayFunc) (ScanResult, error) {
	maxDays := EffectiveMaxAdvanceDays(settings, hardCap)
	horizon := today.AddDate(0, 0, maxDays)

	start := FirstScanDate(settings, today)
	if from != nil {
		start = *from
	}
	// past dates can never be booked
	if start.Before(today) {
		start = today
	}

	for checkDate := start; !checkDate.After(horizon); checkDate = checkDate.AddDate(0, 0, 1) {
		if settings.DisableWeekendBooking && IsWeekend(checkDate) {
			continue
		}

		if DaysBetween(today, checkDate) > maxDays {
			break
		}

		if err := ctx.Err(); err != nil {
			return ScanResult{}, err
		}

		times, err := day(ctx, checkDate)
		if err != nil {
			return ScanResult{}, err
		}

		if len(times) > 0 {
			return ScanResult{Date: checkDate, Times: times}, nil
		}
	}

	return ScanResult{}, domain.ErrNoAvailableDate
}
