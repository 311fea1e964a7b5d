package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/domain"
)

type HoursRepo struct {
	db *pgxpool.Pool
}

func NewHoursRepository(db *pgxpool.Pool) *HoursRepo {
	return &HoursRepo{db: db}
}

// start_time and end_time are TIME columns; they are read back as text ("09:00:00").
const hoursColumns = `id, day_of_week, start_time::text, end_time::text, is_available, created_at, updated_at`

func (r *HoursRepo) Create(ctx context.Context, hours domain.OperatingHours) (int64, error) {
	var id int64

	query := `
		INSERT INTO booking_hours (
			day_of_week, start_time, end_time, is_available, created_at, updated_at
		) VALUES ($1, $2::time, $3::time, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		hours.DayOfWeek,
		hours.StartTime,
		hours.EndTime,
		hours.IsAvailable,
		hours.CreatedAt,
		hours.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("create operating hours: %w", err)
	}

	return id, nil
}

func (r *HoursRepo) GetByID(ctx context.Context, id int64) (*domain.OperatingHours, error) {
	query := `SELECT ` + hoursColumns + ` FROM booking_hours WHERE id = $1`

	hours, err := scanHours(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operating hours: %w", err)
	}

	return hours, nil
}

func (r *HoursRepo) Update(ctx context.Context, hours domain.OperatingHours) error {
	query := `
		UPDATE booking_hours
		SET start_time = $1::time, end_time = $2::time, is_available = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		hours.StartTime,
		hours.EndTime,
		hours.IsAvailable,
		hours.UpdatedAt,
		hours.ID,
	)
	if err != nil {
		return fmt.Errorf("update operating hours: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *HoursRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM booking_hours WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete operating hours: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *HoursRepo) List(ctx context.Context) ([]domain.OperatingHours, error) {
	query := `SELECT ` + hoursColumns + ` FROM booking_hours ORDER BY day_of_week, start_time`

	return r.query(ctx, query)
}

func (r *HoursRepo) ListAvailableByDay(ctx context.Context, dayOfWeek int) ([]domain.OperatingHours, error) {
	query := `
		SELECT ` + hoursColumns + `
		FROM booking_hours
		WHERE day_of_week = $1 AND is_available = true
		ORDER BY start_time
	`

	return r.query(ctx, query, dayOfWeek)
}

func (r *HoursRepo) query(ctx context.Context, query string, args ...interface{}) ([]domain.OperatingHours, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}
	defer rows.Close()

	var result []domain.OperatingHours
	for rows.Next() {
		hours, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operating hours: %w", err)
		}
		result = append(result, *hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}

	return result, nil
}

func scanHours(row pgx.Row) (*domain.OperatingHours, error) {
	var hours domain.OperatingHours
	err := row.Scan(
		&hours.ID,
		&hours.DayOfWeek,
		&hours.StartTime,
		&hours.EndTime,
		&hours.IsAvailable,
		&hours.CreatedAt,
		&hours.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hours, nil
}
