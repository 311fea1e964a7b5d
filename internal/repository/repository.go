package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/domain"
)

type Repositories struct {
	Settings SettingsRepository
	Booking  BookingRepository
	Block    BlockRepository
	Hours    HoursRepository
	Session  SessionRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Settings: NewSettingsRepository(db),
		Booking:  NewBookingRepository(db),
		Block:    NewBlockRepository(db),
		Hours:    NewHoursRepository(db),
		Session:  NewSessionRepository(db),
	}
}

type SettingsRepository interface {
	// Get returns nil without error when the singleton row has never been saved.
	Get(ctx context.Context) (*domain.BookingSettings, error)
	Upsert(ctx context.Context, settings domain.BookingSettings) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error)
	// ListOccupying returns pending and confirmed bookings of the date.
	ListOccupying(ctx context.Context, date time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type BlockRepository interface {
	Create(ctx context.Context, block domain.BookingBlock) (int64, error)
	Delete(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, date time.Time) ([]domain.BookingBlock, error)
	// ListBlocking returns the non-virtual blocks of the date.
	ListBlocking(ctx context.Context, date time.Time) ([]domain.BookingBlock, error)
}

type HoursRepository interface {
	Create(ctx context.Context, hours domain.OperatingHours) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.OperatingHours, error)
	Update(ctx context.Context, hours domain.OperatingHours) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.OperatingHours, error)
	// ListAvailableByDay returns is_available rows of the weekday ordered by start_time.
	ListAvailableByDay(ctx context.Context, dayOfWeek int) ([]domain.OperatingHours, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByLogin(ctx context.Context, login string) error
}
