package monitoring

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/config"
)

func TestNewReporterWithoutDSN(t *testing.T) {
	reporter, flush, err := NewReporter(&config.SentryConfig{}, "test")
	require.NoError(t, err)
	defer flush()

	assert.IsType(t, &logReporter{}, reporter)
	reporter.CaptureError(context.Background(), errors.New("boom"), map[string]string{"operation": "test"})
}

func TestSentryReporterUsesHubFromContext(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		},
	})
	require.NoError(t, err)

	hub := sentry.NewHub(client, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	reporter := &sentryReporter{}
	reporter.CaptureError(ctx, errors.New("rollover failed"), map[string]string{"operation": "rollover"})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, "rollover", events[0].Tags["operation"])
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "rollover failed", events[0].Exception[0].Value)
}
