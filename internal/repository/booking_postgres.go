package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/availability"
	"masgolf/internal/domain"
)

type BookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{
		db: db,
	}
}

const bookingColumns = `id, name, phone, date, time, duration_minutes, status, notes, created_at, updated_at`

// Create inserts a pending booking. Writes for the same date are serialized with an
// advisory lock and the new range is checked against that date's occupying bookings
// under the lock.
func (r *BookingRepo) Create(ctx context.Context, booking domain.Booking) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err = lockAndCheckSlot(ctx, tx, booking); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO bookings (name, phone, date, time, duration_minutes, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		booking.Name,
		booking.Phone,
		booking.Date.Format(domain.DateLayout),
		booking.Time,
		booking.DurationMinutes,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return id, nil
}

// lockAndCheckSlot takes the per-date advisory lock and returns ErrSlotUnavailable when
// booking overlaps another pending or confirmed booking of its date.
func lockAndCheckSlot(ctx context.Context, tx pgx.Tx, booking domain.Booking) error {
	date := booking.Date.Format(domain.DateLayout)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('bookings:' || $1))`, date); err != nil {
		return fmt.Errorf("lock booking date: %w", err)
	}

	existing, err := queryBookings(ctx, tx, occupyingQuery, date)
	if err != nil {
		return err
	}

	conflict, err := availability.BookingConflict(booking, existing)
	if err != nil {
		return fmt.Errorf("%w: time %q", domain.ErrInvalidInput, booking.Time)
	}
	if conflict {
		return domain.ErrSlotUnavailable
	}

	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepo) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d::date", argPos))
		args = append(args, filter.Date.Format(domain.DateLayout))
		argPos++
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argPos))
		args = append(args, statuses)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	selectQuery := `SELECT ` + bookingColumns + ` FROM bookings` + where +
		fmt.Sprintf(" ORDER BY date DESC, time LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	bookings, err := r.query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

const occupyingQuery = `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE date = $1::date
	AND status IN ('pending', 'confirmed')
`

func (r *BookingRepo) ListOccupying(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	return r.query(ctx, occupyingQuery, date.Format(domain.DateLayout))
}

// UpdateStatus changes the status of a booking. Moving a cancelled booking back to
// pending or confirmed rechecks its range under the date lock.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	current, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get booking: %w", err)
	}

	if status.Occupies() && !current.Status.Occupies() {
		if err = lockAndCheckSlot(ctx, tx, *current); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

func (r *BookingRepo) query(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	return queryBookings(ctx, r.db, query, args...)
}

func queryBookings(ctx context.Context, q querier, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Phone,
		&booking.Date,
		&booking.Time,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
