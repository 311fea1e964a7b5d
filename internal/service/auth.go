package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/domain"
	"masgolf/internal/repository"
	"masgolf/pkg/auth"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type AuthServiceImpl struct {
	sessionRepo repository.SessionRepository
	admin       config.AdminConfig
	jwtConfig   config.JWTConfig
	now         func() time.Time
	logger      *zap.Logger
}

func NewAuthService(sessionRepo repository.SessionRepository, admin config.AdminConfig, jwtConfig config.JWTConfig, now func() time.Time, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		sessionRepo: sessionRepo,
		admin:       admin,
		jwtConfig:   jwtConfig,
		now:         now,
		logger:      logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	if s.admin.PasswordHash == "" {
		s.logger.Warn("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		return nil, domain.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(dto.Login), []byte(s.admin.Login)) != 1 {
		s.logger.Info("admin login rejected", zap.String("login", dto.Login), zap.String("ip", ip))
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(dto.Password, s.admin.PasswordHash)
	if err != nil {
		s.logger.Error("failed to verify admin password", zap.Error(err))
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.logger.Info("admin login rejected", zap.String("login", dto.Login), zap.String("ip", ip))
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.openSession(ctx, s.admin.Login, userAgent, ip)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("login", s.admin.Login), zap.String("ip", ip))
	return tokens, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.sessionRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		s.logger.Error("failed to get session", zap.Error(err))
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.ExpiresAt.Before(s.now()) {
		if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
			s.logger.Warn("failed to delete expired session", zap.String("session_id", session.ID), zap.Error(err))
		}
		return nil, domain.ErrInvalidToken
	}

	if session.Login != s.admin.Login {
		// the operator login was changed since the session was opened
		if err := s.sessionRepo.DeleteSessionsByLogin(ctx, session.Login); err != nil {
			s.logger.Warn("failed to delete stale sessions", zap.String("login", session.Login), zap.Error(err))
		}
		return nil, domain.ErrInvalidToken
	}

	if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Warn("failed to delete rotated session", zap.String("session_id", session.ID), zap.Error(err))
	}

	return s.openSession(ctx, session.Login, userAgent, ip)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("logout with unknown refresh token")
			return nil
		}
		s.logger.Error("failed to get session", zap.Error(err))
		return fmt.Errorf("get session: %w", err)
	}

	if err := s.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Error("failed to delete session", zap.String("session_id", session.ID), zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return "", "", domain.ErrInvalidToken
	}

	return claims.Subject, claims.Role, nil
}

func (s *AuthServiceImpl) openSession(ctx context.Context, login, userAgent, ip string) (*domain.Tokens, error) {
	tokens, err := s.generateTokens(login)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, fmt.Errorf("generate tokens: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:           uuid.New().String(),
		Login:        login,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    now.Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    now,
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
		return nil, fmt.Errorf("save session: %w", err)
	}

	return tokens, nil
}

func (s *AuthServiceImpl) generateTokens(login string) (*domain.Tokens, error) {
	now := s.now()

	accessToken, err := s.sign(login, now, s.jwtConfig.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := s.sign(login, now, s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthServiceImpl) sign(login string, now time.Time, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// unique id keeps two tokens issued in the same second distinct
			ID:        uuid.New().String(),
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: domain.AdminRole,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.SigningKey))
}
