// Package scheduler runs the automatic period rollover on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
)

const jobTimeout = time.Minute

// Job is the work run on every tick.
type Job func(ctx context.Context) error

// RolloverScheduler triggers the catch-up rollover on a cron schedule.
type RolloverScheduler struct {
	cron     *cron.Cron
	spec     string
	job      Job
	reporter adapter.ErrorReporter
}

// NewRolloverScheduler creates a scheduler for the configured cron spec.
func NewRolloverScheduler(cfg *config.SchedulerConfig, job Job, reporter adapter.ErrorReporter) *RolloverScheduler {
	logger := cronLogger{}
	return &RolloverScheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		spec:     cfg.RolloverCron,
		job:      job,
		reporter: reporter,
	}
}

// Start registers the job and starts the cron loop in the background.
func (s *RolloverScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("failed to schedule rollover %q: %w", s.spec, err)
	}
	s.cron.Start()
	slog.Info("Rollover scheduler started", "schedule", s.spec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish or ctx
// to expire.
func (s *RolloverScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		slog.Warn("Rollover scheduler stopped before the running job finished")
	}
}

func (s *RolloverScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.job(ctx); err != nil {
		s.reporter.CaptureError(ctx, err, map[string]string{"operation": "scheduled_rollover"})
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
