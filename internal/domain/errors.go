package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoAvailableDate    = errors.New("no available date within booking horizon")
	ErrSlotUnavailable    = errors.New("requested time is not available")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid token")
)
