package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"masgolf/internal/availability"
	"masgolf/internal/domain"
	"masgolf/internal/repository"
)

type HoursServiceImpl struct {
	repo   repository.HoursRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewHoursService(repo repository.HoursRepository, now func() time.Time, logger *zap.Logger) *HoursServiceImpl {
	return &HoursServiceImpl{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

func validateWindow(start, end string) (string, string, error) {
	startMin, err := availability.ParseClock(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: start_time must be HH:MM", domain.ErrInvalidInput)
	}

	endMin, err := availability.ParseClock(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: end_time must be HH:MM", domain.ErrInvalidInput)
	}

	if startMin >= endMin {
		return "", "", fmt.Errorf("%w: start_time must be before end_time", domain.ErrInvalidInput)
	}

	return startMin.String(), endMin.String(), nil
}

func (s *HoursServiceImpl) Create(ctx context.Context, dto domain.CreateOperatingHoursDTO) (int64, error) {
	if dto.DayOfWeek == nil || *dto.DayOfWeek < 0 || *dto.DayOfWeek > 6 {
		return 0, fmt.Errorf("%w: day_of_week must be 0-6", domain.ErrInvalidInput)
	}

	start, end, err := validateWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return 0, err
	}

	isAvailable := true
	if dto.IsAvailable != nil {
		isAvailable = *dto.IsAvailable
	}

	now := s.now()
	hours := domain.OperatingHours{
		DayOfWeek:   *dto.DayOfWeek,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: isAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, hours)
	if err != nil {
		s.logger.Error("failed to create operating hours", zap.Error(err))
		return 0, fmt.Errorf("create operating hours: %w", err)
	}

	return id, nil
}

func (s *HoursServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateOperatingHoursDTO) error {
	hours, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get operating hours", zap.Int64("hours_id", id), zap.Error(err))
		return fmt.Errorf("get operating hours: %w", err)
	}
	if hours == nil {
		return domain.ErrNotFound
	}

	startTime, endTime := hours.StartTime, hours.EndTime
	if dto.StartTime != nil {
		startTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		endTime = *dto.EndTime
	}

	hours.StartTime, hours.EndTime, err = validateWindow(startTime, endTime)
	if err != nil {
		return err
	}

	if dto.IsAvailable != nil {
		hours.IsAvailable = *dto.IsAvailable
	}

	hours.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, *hours); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to update operating hours", zap.Int64("hours_id", id), zap.Error(err))
		return fmt.Errorf("update operating hours: %w", err)
	}

	return nil
}

func (s *HoursServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete operating hours", zap.Int64("hours_id", id), zap.Error(err))
		return fmt.Errorf("delete operating hours: %w", err)
	}
	return nil
}

func (s *HoursServiceImpl) List(ctx context.Context) ([]domain.OperatingHours, error) {
	hours, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list operating hours", zap.Error(err))
		return nil, fmt.Errorf("list operating hours: %w", err)
	}

	for i := range hours {
		// TIME columns come back as "09:00:00"
		if v, err := availability.FormatClock(hours[i].StartTime); err == nil {
			hours[i].StartTime = v
		}
		if v, err := availability.FormatClock(hours[i].EndTime); err == nil {
			hours[i].EndTime = v
		}
	}

	return hours, nil
}
