package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/domain"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (*domain.BookingSettings, error) {
	query := `
		SELECT id, disable_same_day_booking, disable_weekend_booking, min_advance_hours, max_advance_days, updated_at
		FROM booking_settings
		WHERE id = $1
	`

	var settings domain.BookingSettings
	err := r.db.QueryRow(ctx, query, domain.SettingsID).Scan(
		&settings.ID,
		&settings.DisableSameDayBooking,
		&settings.DisableWeekendBooking,
		&settings.MinAdvanceHours,
		&settings.MaxAdvanceDays,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking settings: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, settings domain.BookingSettings) error {
	query := `
		INSERT INTO booking_settings (
			id, disable_same_day_booking, disable_weekend_booking, min_advance_hours, max_advance_days, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			disable_same_day_booking = EXCLUDED.disable_same_day_booking,
			disable_weekend_booking = EXCLUDED.disable_weekend_booking,
			min_advance_hours = EXCLUDED.min_advance_hours,
			max_advance_days = EXCLUDED.max_advance_days,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		domain.SettingsID,
		settings.DisableSameDayBooking,
		settings.DisableWeekendBooking,
		settings.MinAdvanceHours,
		settings.MaxAdvanceDays,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save booking settings: %w", err)
	}

	return nil
}
