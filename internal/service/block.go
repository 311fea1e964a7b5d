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
	"masgolf/pkg/validator"
)

type BlockServiceImpl struct {
	repo   repository.BlockRepository
	cfg    config.BookingConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewBlockService(repo repository.BlockRepository, cfg config.BookingConfig, now func() time.Time, logger *zap.Logger) *BlockServiceImpl {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &BlockServiceImpl{
		repo:   repo,
		cfg:    cfg,
		now:    now,
		logger: logger,
	}
}

func (s *BlockServiceImpl) Create(ctx context.Context, dto domain.CreateBlockDTO) (int64, error) {
	date, err := time.ParseInLocation(domain.DateLayout, dto.Date, s.cfg.Location)
	if err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	// stored normalized so new rows never need the permissive parser
	start, err := availability.FormatClock(dto.Time)
	if err != nil {
		return 0, fmt.Errorf("%w: time must be HH:MM", domain.ErrInvalidInput)
	}

	duration := dto.DurationMinutes
	if duration <= 0 {
		duration = availability.DefaultDurationMinutes
	}

	block := domain.BookingBlock{
		Date:            date,
		Time:            start,
		DurationMinutes: duration,
		IsVirtual:       dto.IsVirtual,
		Reason:          validator.SanitizeString(dto.Reason),
		CreatedAt:       s.now(),
	}

	id, err := s.repo.Create(ctx, block)
	if err != nil {
		s.logger.Error("failed to create booking block", zap.Error(err))
		return 0, fmt.Errorf("create booking block: %w", err)
	}

	s.logger.Info("booking block created",
		zap.Int64("block_id", id),
		zap.String("date", dto.Date),
		zap.String("time", start),
		zap.Bool("virtual", dto.IsVirtual),
	)

	return id, nil
}

func (s *BlockServiceImpl) ListByDate(ctx context.Context, dateStr string) ([]domain.BookingBlock, error) {
	date, err := time.ParseInLocation(domain.DateLayout, dateStr, s.cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	blocks, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("failed to list booking blocks", zap.Error(err))
		return nil, fmt.Errorf("list booking blocks: %w", err)
	}

	return blocks, nil
}

func (s *BlockServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("failed to delete booking block", zap.Int64("block_id", id), zap.Error(err))
		return fmt.Errorf("delete booking block: %w", err)
	}
	return nil
}
