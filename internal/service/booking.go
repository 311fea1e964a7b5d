package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/availability"
	"masgolf/internal/domain"
	"masgolf/internal/repository"
	"masgolf/pkg/validator"
)

type BookingServiceImpl struct {
	repo         repository.BookingRepository
	availability AvailabilityService
	cfg          config.BookingConfig
	now          func() time.Time
	logger       *zap.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	availability AvailabilityService,
	cfg config.BookingConfig,
	now func() time.Time,
	logger *zap.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		repo:         repo,
		availability: availability,
		cfg:          cfg,
		now:          now,
		logger:       logger,
	}
}

// Create stores a pending booking if the requested start is one the calculator offers
// for that date and duration right now.
func (s *BookingServiceImpl) Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error) {
	name := validator.SanitizeString(dto.Name)
	if !validator.ValidateName(name) {
		return nil, fmt.Errorf("%w: name", domain.ErrInvalidInput)
	}

	if !validator.ValidatePhone(dto.Phone) {
		return nil, fmt.Errorf("%w: phone number", domain.ErrInvalidInput)
	}

	date, err := s.availability.ParseDate(dto.Date)
	if err != nil {
		return nil, err
	}

	start, err := availability.FormatClock(dto.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", domain.ErrInvalidInput)
	}

	duration := dto.Duration
	if duration <= 0 {
		duration = s.cfg.DefaultDuration
	}

	open, err := s.availability.AvailableTimes(ctx, date, duration)
	if err != nil {
		return nil, err
	}

	duration = open.Duration

	if !contains(open.AvailableTimes, start) {
		s.logger.Info("booking rejected, slot not offered",
			zap.String("date", dto.Date),
			zap.String("time", start),
			zap.Int("duration", duration),
		)
		return nil, domain.ErrSlotUnavailable
	}

	now := s.now()
	booking := domain.Booking{
		Name:            name,
		Phone:           validator.FormatPhone(dto.Phone),
		Date:            date,
		Time:            start,
		DurationMinutes: duration,
		Status:          domain.BookingStatusPending,
		Notes:           validator.SanitizeString(dto.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			return nil, err
		}
		s.logger.Error("failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.ID = id

	s.logger.Info("booking created",
		zap.Int64("booking_id", id),
		zap.String("date", dto.Date),
		zap.String("time", start),
	)

	return &booking, nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get booking", zap.Int64("booking_id", id), zap.Error(err))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}

func (s *BookingServiceImpl) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list bookings", zap.Error(err))
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, total, nil
}

// UpdateStatus changes a booking's status. A cancelled booking is only reinstated
// while its start is still offered for its date and duration.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}

	if status.Occupies() {
		if err := s.checkReinstatable(ctx, id); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrSlotUnavailable) {
			return err
		}
		s.logger.Error("failed to update booking status", zap.Int64("booking_id", id), zap.Error(err))
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status updated", zap.Int64("booking_id", id), zap.String("status", string(status)))
	return nil
}

func (s *BookingServiceImpl) checkReinstatable(ctx context.Context, id int64) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status.Occupies() {
		return nil
	}

	start, err := availability.FormatClock(booking.Time)
	if err != nil {
		return fmt.Errorf("%w: stored time %q", domain.ErrInvalidInput, booking.Time)
	}

	open, err := s.availability.AvailableTimes(ctx, booking.Date, booking.DurationMinutes)
	if err != nil {
		return err
	}

	if !contains(open.AvailableTimes, start) {
		s.logger.Info("booking reinstatement rejected, slot taken",
			zap.Int64("booking_id", id),
			zap.String("date", booking.Date.Format(domain.DateLayout)),
			zap.String("time", start),
		)
		return domain.ErrSlotUnavailable
	}

	return nil
}

func contains(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
