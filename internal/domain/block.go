package domain

import (
	"time"
)

// BookingBlock is an administrator-defined unavailable range. Virtual blocks are
// display-only and never remove availability.
type BookingBlock struct {
	ID              int64     `json:"id"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsVirtual       bool      `json:"is_virtual"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateBlockDTO struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	IsVirtual       bool   `json:"is_virtual"`
	Reason          string `json:"reason"`
}
