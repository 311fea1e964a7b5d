package domain

import (
	"time"
)

const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Occupies reports whether a booking in this status takes its time range off the calendar.
func (s BookingStatus) Occupies() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Booking struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Date            time.Time     `json:"date"`
	Time            string        `json:"time"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateBookingDTO struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Duration int    `json:"duration" binding:"omitempty,min=1,max=480"`
	Notes    string `json:"notes"`
}

type UpdateBookingStatusDTO struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type BookingFilter struct {
	Date     *time.Time      `json:"date"`
	Statuses []BookingStatus `json:"statuses"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}
