package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"masgolf/internal/domain"
)

type SessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{
		db: db,
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session domain.Session) error {
	query := `
		INSERT INTO admin_sessions (id, login, refresh_token, user_agent, ip, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.Login,
		session.RefreshToken,
		session.UserAgent,
		session.IP,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *SessionRepo) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	query := `
		SELECT id, login, refresh_token, user_agent, ip, expires_at, created_at
		FROM admin_sessions
		WHERE refresh_token = $1
	`

	var session domain.Session
	err := r.db.QueryRow(ctx, query, refreshToken).Scan(
		&session.ID,
		&session.Login,
		&session.RefreshToken,
		&session.UserAgent,
		&session.IP,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}

func (r *SessionRepo) DeleteSession(ctx context.Context, id string) error {
	query := `DELETE FROM admin_sessions WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *SessionRepo) DeleteSessionsByLogin(ctx context.Context, login string) error {
	query := `DELETE FROM admin_sessions WHERE login = $1`

	_, err := r.db.Exec(ctx, query, login)
	if err != nil {
		return fmt.Errorf("delete sessions of %s: %w", login, err)
	}

	return nil
}
