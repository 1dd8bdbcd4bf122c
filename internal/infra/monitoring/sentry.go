// Package monitoring reports unexpected failures to Sentry.
package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
)

const flushTimeout = 2 * time.Second

// sentryReporter implements adapter.ErrorReporter on Sentry.
type sentryReporter struct{}

// logReporter implements adapter.ErrorReporter by logging only.
type logReporter struct{}

// NewReporter initializes Sentry when a DSN is configured. The returned
// function flushes buffered events and must be called on shutdown.
func NewReporter(cfg *config.SentryConfig, environment string) (adapter.ErrorReporter, func(), error) {
	if cfg.DSN == "" {
		slog.Info("Sentry disabled, errors are logged only")
		return &logReporter{}, func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: environment,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}

	slog.Info("Sentry initialized", "environment", environment)
	return &sentryReporter{}, func() { sentry.Flush(flushTimeout) }, nil
}

// CaptureError logs err and sends it to Sentry with the given tags.
// A hub stored on ctx takes precedence over the global one.
func (r *sentryReporter) CaptureError(ctx context.Context, err error, tags map[string]string) {
	logError(err, tags)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// CaptureError logs err.
func (r *logReporter) CaptureError(_ context.Context, err error, tags map[string]string) {
	logError(err, tags)
}

func logError(err error, tags map[string]string) {
	args := make([]any, 0, 2+2*len(tags))
	args = append(args, "error", err)
	for k, v := range tags {
		args = append(args, k, v)
	}
	slog.Error("Unexpected failure", args...)
}
