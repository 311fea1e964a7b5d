package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/domain"
	"masgolf/internal/repository"
	"masgolf/internal/storage"
)

type Deps struct {
	Repos   *repository.Repositories
	Logger  *zap.Logger
	Config  *config.Config
	Storage storage.ObjectStorage
	// Now defaults to time.Now.
	Now func() time.Time
}

type Services struct {
	Settings     SettingsService
	Availability AvailabilityService
	Booking      BookingService
	Block        BlockService
	Hours        HoursService
	Auth         AuthService
	Snapshot     SnapshotService
}

func NewServices(deps Deps) *Services {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	settings := NewSettingsService(deps.Repos.Settings, now, deps.Logger)
	availability := NewAvailabilityService(
		settings,
		deps.Repos.Booking,
		deps.Repos.Block,
		deps.Repos.Hours,
		deps.Config.Booking,
		now,
		deps.Logger,
	)

	services := &Services{
		Settings:     settings,
		Availability: availability,
		Booking:      NewBookingService(deps.Repos.Booking, availability, deps.Config.Booking, now, deps.Logger),
		Block:        NewBlockService(deps.Repos.Block, deps.Config.Booking, now, deps.Logger),
		Hours:        NewHoursService(deps.Repos.Hours, now, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Session, deps.Config.Admin, deps.Config.JWT, now, deps.Logger),
	}

	if deps.Storage != nil {
		services.Snapshot = NewSnapshotService(availability, deps.Storage, deps.Config.Booking, deps.Config.Snapshot, now, deps.Logger)
	}

	return services
}

type SettingsService interface {
	// Get returns the stored settings or the defaults when none were saved.
	Get(ctx context.Context) (domain.BookingSettings, error)
	Update(ctx context.Context, dto domain.UpdateBookingSettingsDTO) (domain.BookingSettings, error)
}

type AvailabilityService interface {
	Today() time.Time
	ParseDate(value string) (time.Time, error)
	ComputeAvailableSlots(ctx context.Context, date time.Time, durationMinutes int, settings domain.BookingSettings) ([]string, error)
	AvailableTimes(ctx context.Context, date time.Time, durationMinutes int) (*domain.AvailableTimes, error)
	FindNextAvailableDate(ctx context.Context, durationMinutes int, fromDate *time.Time) (*domain.NextAvailable, error)
}

type BookingService interface {
	Create(ctx context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type BlockService interface {
	Create(ctx context.Context, dto domain.CreateBlockDTO) (int64, error)
	ListByDate(ctx context.Context, date string) ([]domain.BookingBlock, error)
	Delete(ctx context.Context, id int64) error
}

type HoursService interface {
	Create(ctx context.Context, dto domain.CreateOperatingHoursDTO) (int64, error)
	Update(ctx context.Context, id int64, dto domain.UpdateOperatingHoursDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.OperatingHours, error)
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (string, string, error)
}

type SnapshotService interface {
	Publish(ctx context.Context) (*domain.AvailabilitySnapshot, error)
	Latest(ctx context.Context) (*domain.AvailabilitySnapshot, error)
}
