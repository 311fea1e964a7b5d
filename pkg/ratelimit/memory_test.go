package ratelimit

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_BurstThenRefill(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("198.51.100.1"))
	assert.True(t, l.Allow("198.51.100.1"))
	assert.True(t, l.Allow("198.51.100.1"))
	assert.False(t, l.Allow("198.51.100.1"))
	assert.True(t, l.Allow("198.51.100.2"))

	now = now.Add(20 * time.Second)
	assert.True(t, l.Allow("198.51.100.1"))
}

func TestMemoryLimiter_ForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(60)
	l.now = func() time.Time { return now }

	l.Allow("198.51.100.1")
	l.Allow("198.51.100.2")
	assert.Equal(t, 2, l.visitorCount())

	now = now.Add(visitorTTL + time.Minute)
	l.Allow("198.51.100.3")
	assert.Equal(t, 1, l.visitorCount())
}

func TestMemoryLimiter_Middleware(t *testing.T) {
	r := newRouter(NewMemoryLimiter(1).Middleware())

	assert.Equal(t, http.StatusOK, get(r).Code)
	w := get(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
