package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/domain"
	"masgolf/pkg/auth"
)

func newAuthService(t *testing.T, sessions *fakeSessionRepo, now func() time.Time) *AuthServiceImpl {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	return NewAuthService(
		sessions,
		config.AdminConfig{Login: "admin", PasswordHash: hash},
		config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: 24 * time.Hour},
		now,
		zap.NewNop(),
	)
}

func TestAuthLogin(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newAuthService(t, sessions, fixedNow)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "correct horse"}, "curl", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	login, role, err := svc.ParseToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", login)
	assert.Equal(t, domain.AdminRole, role)
}

func TestAuthLogin_WrongCredentials(t *testing.T) {
	svc := newAuthService(t, newFakeSessionRepo(), fixedNow)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "wrong"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Login: "root", Password: "correct horse"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthLogin_NoPasswordConfigured(t *testing.T) {
	svc := NewAuthService(newFakeSessionRepo(), config.AdminConfig{Login: "admin"}, config.JWTConfig{SigningKey: "k"}, fixedNow, zap.NewNop())

	_, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: ""}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthRefresh_RotatesSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newAuthService(t, sessions, fixedNow)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "correct horse"}, "", "")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(context.Background(), tokens.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	_, err = svc.RefreshTokens(context.Background(), tokens.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthRefresh_Expired(t *testing.T) {
	sessions := newFakeSessionRepo()
	now := fixedNow()
	svc := newAuthService(t, sessions, func() time.Time { return now })

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "correct horse"}, "", "")
	require.NoError(t, err)

	now = now.Add(48 * time.Hour)
	_, err = svc.RefreshTokens(context.Background(), tokens.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Empty(t, sessions.sessions)
}

func TestAuthLogout(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newAuthService(t, sessions, fixedNow)

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "correct horse"}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))
	assert.Empty(t, sessions.sessions)
	assert.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))
}

func TestAuthParseToken_Rejects(t *testing.T) {
	now := fixedNow()
	svc := newAuthService(t, newFakeSessionRepo(), func() time.Time { return now })

	tokens, err := svc.Login(context.Background(), domain.LoginRequest{Login: "admin", Password: "correct horse"}, "", "")
	require.NoError(t, err)

	_, _, err = svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	now = now.Add(time.Hour)
	_, _, err = svc.ParseToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
