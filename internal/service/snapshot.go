package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/domain"
	"masgolf/internal/storage"
)

// SnapshotServiceImpl publishes the next open date as a JSON document to object storage.
type SnapshotServiceImpl struct {
	availability AvailabilityService
	storage      storage.ObjectStorage
	booking      config.BookingConfig
	cfg          config.SnapshotConfig
	now          func() time.Time
	logger       *zap.Logger
}

func NewSnapshotService(
	availability AvailabilityService,
	objectStorage storage.ObjectStorage,
	booking config.BookingConfig,
	cfg config.SnapshotConfig,
	now func() time.Time,
	logger *zap.Logger,
) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		availability: availability,
		storage:      objectStorage,
		booking:      booking,
		cfg:          cfg,
		now:          now,
		logger:       logger,
	}
}

func (s *SnapshotServiceImpl) Publish(ctx context.Context) (*domain.AvailabilitySnapshot, error) {
	duration := s.booking.DefaultDuration
	if duration <= 0 {
		duration = 60
	}

	snapshot := &domain.AvailabilitySnapshot{
		Duration:    duration,
		GeneratedAt: s.now().UTC(),
	}

	next, err := s.availability.FindNextAvailableDate(ctx, duration, nil)
	switch {
	case err == nil:
		snapshot.Found = true
		snapshot.Date = next.Date
		snapshot.AvailableTimes = next.AvailableTimes
		snapshot.FormattedDate = next.FormattedDate
	case errors.Is(err, domain.ErrNoAvailableDate):
		snapshot.Found = false
	default:
		return nil, fmt.Errorf("find next available date: %w", err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	url, err := s.storage.PutObject(ctx, s.cfg.ObjectKey, data, "application/json")
	if err != nil {
		s.logger.Error("failed to upload availability snapshot", zap.String("key", s.cfg.ObjectKey), zap.Error(err))
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	s.logger.Info("availability snapshot published",
		zap.String("url", url),
		zap.Bool("found", snapshot.Found),
		zap.String("date", snapshot.Date),
	)

	return snapshot, nil
}

func (s *SnapshotServiceImpl) Latest(ctx context.Context) (*domain.AvailabilitySnapshot, error) {
	data, err := s.storage.GetObject(ctx, s.cfg.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to download availability snapshot", zap.String("key", s.cfg.ObjectKey), zap.Error(err))
		return nil, fmt.Errorf("download snapshot: %w", err)
	}

	var snapshot domain.AvailabilitySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
