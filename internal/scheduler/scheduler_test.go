package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"masgolf/internal/domain"
)

type countingPublisher struct {
	calls atomic.Int32
	err   error
}

func (p *countingPublisher) Publish(ctx context.Context) (*domain.AvailabilitySnapshot, error) {
	p.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("job context has no deadline")
	}
	if p.err != nil {
		return nil, p.err
	}
	return &domain.AvailabilitySnapshot{Found: true, Date: "2026-10-16"}, nil
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := New(&countingPublisher{}, time.UTC, time.Second, zap.NewNop())

	assert.Error(t, s.Register("every quarter hour"))
	assert.Zero(t, s.Entries())

	require.NoError(t, s.Register("@every 15m"))
	require.NoError(t, s.Register("*/15 9-18 * * 1-5"))
	assert.Equal(t, 2, s.Entries())
}

func TestRunOnce_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := &countingPublisher{}
	s := New(publisher, nil, time.Second, zap.New(core))

	s.RunOnce(context.Background())
	assert.Equal(t, int32(1), publisher.calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("snapshot job finished").Len())

	publisher.err = errors.New("bucket missing")
	s.RunOnce(context.Background())
	assert.Equal(t, 1, logs.FilterMessage("snapshot job failed").Len())
}

func TestStartStop(t *testing.T) {
	publisher := &countingPublisher{}
	s := New(publisher, time.UTC, time.Second, zap.NewNop())
	require.NoError(t, s.Register("@every 1s"))

	s.Start()
	assert.Eventually(t, func() bool { return publisher.calls.Load() > 0 }, 5*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
