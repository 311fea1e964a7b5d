package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"masgolf/internal/domain"
	"masgolf/internal/repository"
)

type SettingsServiceImpl struct {
	repo   repository.SettingsRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, now func() time.Time, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (domain.BookingSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load booking settings", zap.Error(err))
		return domain.BookingSettings{}, fmt.Errorf("load booking settings: %w", err)
	}

	if settings == nil {
		return domain.DefaultBookingSettings(), nil
	}

	return *settings, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, dto domain.UpdateBookingSettingsDTO) (domain.BookingSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return domain.BookingSettings{}, err
	}

	if dto.DisableSameDayBooking != nil {
		settings.DisableSameDayBooking = *dto.DisableSameDayBooking
	}
	if dto.DisableWeekendBooking != nil {
		settings.DisableWeekendBooking = *dto.DisableWeekendBooking
	}
	if dto.MinAdvanceHours != nil {
		if *dto.MinAdvanceHours < 0 {
			return domain.BookingSettings{}, fmt.Errorf("%w: min_advance_hours must not be negative", domain.ErrInvalidInput)
		}
		settings.MinAdvanceHours = *dto.MinAdvanceHours
	}
	if dto.MaxAdvanceDays != nil {
		if *dto.MaxAdvanceDays < 0 {
			return domain.BookingSettings{}, fmt.Errorf("%w: max_advance_days must not be negative", domain.ErrInvalidInput)
		}
		settings.MaxAdvanceDays = *dto.MaxAdvanceDays
	}

	settings.ID = domain.SettingsID
	settings.UpdatedAt = s.now()

	if err := s.repo.Upsert(ctx, settings); err != nil {
		s.logger.Error("failed to save booking settings", zap.Error(err))
		return domain.BookingSettings{}, fmt.Errorf("save booking settings: %w", err)
	}

	s.logger.Info("booking settings updated",
		zap.Bool("disable_same_day_booking", settings.DisableSameDayBooking),
		zap.Bool("disable_weekend_booking", settings.DisableWeekendBooking),
		zap.Int("min_advance_hours", settings.MinAdvanceHours),
		zap.Int("max_advance_days", settings.MaxAdvanceDays),
	)

	return settings, nil
}
