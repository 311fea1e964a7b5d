package domain

import (
	"time"
)

type NextAvailable struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
	FormattedDate  string   `json:"formatted_date"`
}

type AvailableTimes struct {
	Date           string   `json:"date"`
	Duration       int      `json:"duration"`
	AvailableTimes []string `json:"available_times"`
}

// AvailabilitySnapshot is the document published for static storefront pages.
type AvailabilitySnapshot struct {
	Found          bool      `json:"found"`
	Duration       int       `json:"duration"`
	Date           string    `json:"date,omitempty"`
	AvailableTimes []string  `json:"available_times,omitempty"`
	FormattedDate  string    `json:"formatted_date,omitempty"`
	GeneratedAt    time.Time `json:"generated_at"`
}
