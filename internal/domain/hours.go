package domain

import (
	"time"
)

type OperatingHours struct {
	ID          int64     `json:"id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateOperatingHoursDTO struct {
	DayOfWeek   *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateOperatingHoursDTO struct {
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}
