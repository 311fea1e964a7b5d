package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/availability"
	"masgolf/internal/domain"
	"masgolf/internal/repository"
)

type AvailabilityServiceImpl struct {
	settings    SettingsService
	bookingRepo repository.BookingRepository
	blockRepo   repository.BlockRepository
	hoursRepo   repository.HoursRepository
	cfg         config.BookingConfig
	now         func() time.Time
	logger      *zap.Logger
}

func NewAvailabilityService(
	settings SettingsService,
	bookingRepo repository.BookingRepository,
	blockRepo repository.BlockRepository,
	hoursRepo repository.HoursRepository,
	cfg config.BookingConfig,
	now func() time.Time,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &AvailabilityServiceImpl{
		settings:    settings,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		hoursRepo:   hoursRepo,
		cfg:         cfg,
		now:         now,
		logger:      logger,
	}
}

// Today is the current calendar date in the business time zone.
func (s *AvailabilityServiceImpl) Today() time.Time {
	return availability.StartOfDay(s.now(), s.cfg.Location)
}

func (s *AvailabilityServiceImpl) ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateLayout, value, s.cfg.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return date, nil
}

func (s *AvailabilityServiceImpl) duration(durationMinutes int) int {
	if durationMinutes > 0 {
		return durationMinutes
	}
	if s.cfg.DefaultDuration > 0 {
		return s.cfg.DefaultDuration
	}
	return availability.DefaultDurationMinutes
}

// ComputeAvailableSlots returns the open start times of date. Policy rejections and
// conflicts yield an empty list; only storage failures are returned as errors.
func (s *AvailabilityServiceImpl) ComputeAvailableSlots(ctx context.Context, date time.Time, durationMinutes int, settings domain.BookingSettings) ([]string, error) {
	date = availability.StartOfDay(date, s.cfg.Location)
	durationMinutes = s.duration(durationMinutes)

	if reason := availability.Gate(settings, date, s.Today()); reason != availability.Admitted {
		s.logger.Debug("date closed by booking policy",
			zap.String("date", date.Format(domain.DateLayout)),
			zap.String("reason", string(reason)),
		)
		return []string{}, nil
	}

	booked, err := s.bookedIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blockedIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	windows, ruled, err := s.windows(ctx, date)
	if err != nil {
		return nil, err
	}

	// the default window is only for weekdays without any rows
	if ruled && len(windows) == 0 {
		return []string{}, nil
	}

	return availability.Slots(windows, booked, blocked, durationMinutes), nil
}

func (s *AvailabilityServiceImpl) AvailableTimes(ctx context.Context, date time.Time, durationMinutes int) (*domain.AvailableTimes, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	durationMinutes = s.duration(durationMinutes)

	times, err := s.ComputeAvailableSlots(ctx, date, durationMinutes, settings)
	if err != nil {
		return nil, err
	}

	return &domain.AvailableTimes{
		Date:           date.Format(domain.DateLayout),
		Duration:       durationMinutes,
		AvailableTimes: times,
	}, nil
}

// FindNextAvailableDate scans forward day by day and returns the first date with an
// open start time, or domain.ErrNoAvailableDate once the booking horizon is exhausted.
func (s *AvailabilityServiceImpl) FindNextAvailableDate(ctx context.Context, durationMinutes int, fromDate *time.Time) (*domain.NextAvailable, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	durationMinutes = s.duration(durationMinutes)

	var from *time.Time
	if fromDate != nil {
		start := availability.StartOfDay(*fromDate, s.cfg.Location)
		from = &start
	}

	result, err := availability.Scan(ctx, settings, s.Today(), from, s.cfg.MaxHorizonDays,
		func(ctx context.Context, date time.Time) ([]string, error) {
			return s.ComputeAvailableSlots(ctx, date, durationMinutes, settings)
		},
	)
	if err != nil {
		if !errors.Is(err, domain.ErrNoAvailableDate) {
			s.logger.Error("next available date scan failed", zap.Error(err))
		}
		return nil, err
	}

	return &domain.NextAvailable{
		Date:           result.Date.Format(domain.DateLayout),
		AvailableTimes: result.Times,
		FormattedDate:  availability.FormatKoreanDate(result.Date),
	}, nil
}

func (s *AvailabilityServiceImpl) bookedIntervals(ctx context.Context, date time.Time) ([]availability.Interval, error) {
	bookings, err := s.bookingRepo.ListOccupying(ctx, date)
	if err != nil {
		s.logger.Error("failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	intervals := make([]availability.Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.Occupies() {
			continue
		}
		start, err := availability.ParseClock(b.Time)
		if err != nil {
			s.logger.Warn("skipping booking with malformed time",
				zap.Int64("booking_id", b.ID),
				zap.String("time", b.Time),
				zap.Error(err),
			)
			continue
		}
		intervals = append(intervals, availability.NewInterval(start, s.duration(b.DurationMinutes)))
	}

	return intervals, nil
}

func (s *AvailabilityServiceImpl) blockedIntervals(ctx context.Context, date time.Time) ([]availability.Interval, error) {
	blocks, err := s.blockRepo.ListBlocking(ctx, date)
	if err != nil {
		s.logger.Error("failed to load booking blocks", zap.Error(err))
		return nil, fmt.Errorf("load booking blocks: %w", err)
	}

	intervals := make([]availability.Interval, 0, len(blocks))
	for _, b := range blocks {
		if b.IsVirtual {
			continue
		}
		start, err := availability.ParseClock(b.Time)
		if err != nil {
			s.logger.Warn("skipping booking block with malformed time",
				zap.Int64("block_id", b.ID),
				zap.String("time", b.Time),
				zap.Error(err),
			)
			continue
		}
		intervals = append(intervals, availability.NewInterval(start, s.duration(b.DurationMinutes)))
	}

	return intervals, nil
}

func (s *AvailabilityServiceImpl) windows(ctx context.Context, date time.Time) ([]availability.Window, bool, error) {
	rules, err := s.hoursRepo.ListAvailableByDay(ctx, int(date.Weekday()))
	if err != nil {
		s.logger.Error("failed to load operating hours", zap.Error(err))
		return nil, false, fmt.Errorf("load operating hours: %w", err)
	}

	windows := make([]availability.Window, 0, len(rules))
	for _, r := range rules {
		if !r.IsAvailable {
			continue
		}
		start, err := availability.ParseClock(r.StartTime)
		if err != nil {
			s.logger.Warn("skipping operating hours with malformed start", zap.Int64("hours_id", r.ID), zap.Error(err))
			continue
		}
		end, err := availability.ParseClock(r.EndTime)
		if err != nil {
			s.logger.Warn("skipping operating hours with malformed end", zap.Int64("hours_id", r.ID), zap.Error(err))
			continue
		}
		windows = append(windows, availability.Window{Start: start, End: end})
	}

	return windows, len(rules) > 0, nil
}
