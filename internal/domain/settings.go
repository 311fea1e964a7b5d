package domain

import (
	"time"

	"github.com/google/uuid"
)

// SettingsID is the fixed key of the booking_settings singleton row.
var SettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type BookingSettings struct {
	ID                    uuid.UUID `json:"id"`
	DisableSameDayBooking bool      `json:"disable_same_day_booking"`
	DisableWeekendBooking bool      `json:"disable_weekend_booking"`
	MinAdvanceHours       int       `json:"min_advance_hours"`
	MaxAdvanceDays        int       `json:"max_advance_days"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultBookingSettings is used whenever the singleton row has not been saved yet.
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		ID:                    SettingsID,
		DisableSameDayBooking: false,
		DisableWeekendBooking: false,
		MinAdvanceHours:       24,
		MaxAdvanceDays:        14,
	}
}

type UpdateBookingSettingsDTO struct {
	DisableSameDayBooking *bool `json:"disable_same_day_booking"`
	DisableWeekendBooking *bool `json:"disable_weekend_booking"`
	MinAdvanceHours       *int  `json:"min_advance_hours" binding:"omitempty,min=0"`
	MaxAdvanceDays        *int  `json:"max_advance_days" binding:"omitempty,min=0"`
}
