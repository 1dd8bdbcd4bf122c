package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/config"
)

type recordingReporter struct {
	errs []error
	tags []map[string]string
}

func (r *recordingReporter) CaptureError(_ context.Context, err error, tags map[string]string) {
	r.errs = append(r.errs, err)
	r.tags = append(r.tags, tags)
}

func TestRolloverSchedulerReportsFailures(t *testing.T) {
	reporter := &recordingReporter{}
	failure := errors.New("snapshot write failed")
	s := NewRolloverScheduler(&config.SchedulerConfig{RolloverCron: "5 0 1 * *"}, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return failure
	}, reporter)

	s.run()

	require.Len(t, reporter.errs, 1)
	assert.ErrorIs(t, reporter.errs[0], failure)
	assert.Equal(t, "scheduled_rollover", reporter.tags[0]["operation"])
}

func TestRolloverSchedulerSuccessIsQuiet(t *testing.T) {
	reporter := &recordingReporter{}
	calls := 0
	s := NewRolloverScheduler(&config.SchedulerConfig{RolloverCron: "5 0 1 * *"}, func(context.Context) error {
		calls++
		return nil
	}, reporter)

	s.run()

	assert.Equal(t, 1, calls)
	assert.Empty(t, reporter.errs)
}

func TestRolloverSchedulerRejectsInvalidSpec(t *testing.T) {
	s := NewRolloverScheduler(&config.SchedulerConfig{RolloverCron: "monthly please"}, func(context.Context) error {
		return nil
	}, &recordingReporter{})

	assert.Error(t, s.Start())
}

func TestRolloverSchedulerStartStop(t *testing.T) {
	s := NewRolloverScheduler(&config.SchedulerConfig{RolloverCron: "@every 1h"}, func(context.Context) error {
		return nil
	}, &recordingReporter{})

	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
