package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"masgolf/internal/domain"
)

// Publisher is the job the scheduler runs on every tick.
type Publisher interface {
	Publish(ctx context.Context) (*domain.AvailabilitySnapshot, error)
}

type Scheduler struct {
	cron      *cron.Cron
	publisher Publisher
	timeout   time.Duration
	logger    *zap.Logger
}

func New(publisher Publisher, loc *time.Location, timeout time.Duration, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	cl := cronLogger{logger: logger.Sugar()}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Register schedules the snapshot job. expr accepts standard five-field expressions
// and descriptors such as "@every 15m".
func (s *Scheduler) Register(expr string) error {
	id, err := s.cron.AddFunc(expr, func() { s.RunOnce(context.Background()) })
	if err != nil {
		return fmt.Errorf("schedule snapshot job %q: %w", expr, err)
	}

	s.logger.Info("snapshot job scheduled", zap.String("schedule", expr), zap.Int("entry_id", int(id)))
	return nil
}

// RunOnce publishes a snapshot and logs the outcome. Failures never stop the schedule.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	snapshot, err := s.publisher.Publish(ctx)
	if err != nil {
		s.logger.Error("snapshot job failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return
	}

	s.logger.Info("snapshot job finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("found", snapshot.Found),
		zap.String("date", snapshot.Date),
	)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
