package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/domain"
)

type BlockRepo struct {
	db *pgxpool.Pool
}

func NewBlockRepository(db *pgxpool.Pool) *BlockRepo {
	return &BlockRepo{db: db}
}

func (r *BlockRepo) Create(ctx context.Context, block domain.BookingBlock) (int64, error) {
	var id int64

	query := `
		INSERT INTO booking_blocks (date, time, duration_minutes, is_virtual, reason, created_at)
		VALUES ($1::date, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		block.Date.Format(domain.DateLayout),
		block.Time,
		block.DurationMinutes,
		block.IsVirtual,
		block.Reason,
		block.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create booking block: %w", err)
	}

	return id, nil
}

func (r *BlockRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM booking_blocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking block: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BlockRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.BookingBlock, error) {
	query := `
		SELECT id, date, time, duration_minutes, is_virtual, reason, created_at
		FROM booking_blocks
		WHERE date = $1::date
		ORDER BY time
	`

	return r.query(ctx, query, date.Format(domain.DateLayout))
}

func (r *BlockRepo) ListBlocking(ctx context.Context, date time.Time) ([]domain.BookingBlock, error) {
	query := `
		SELECT id, date, time, duration_minutes, is_virtual, reason, created_at
		FROM booking_blocks
		WHERE date = $1::date AND is_virtual = false
	`

	return r.query(ctx, query, date.Format(domain.DateLayout))
}

func (r *BlockRepo) query(ctx context.Context, query string, args ...interface{}) ([]domain.BookingBlock, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.BookingBlock
	for rows.Next() {
		var block domain.BookingBlock
		if err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.Time,
			&block.DurationMinutes,
			&block.IsVirtual,
			&block.Reason,
			&block.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking block: %w", err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list booking blocks: %w", err)
	}

	return blocks, nil
}
