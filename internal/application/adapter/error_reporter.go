package adapter

import "context"

// ErrorReporter defines the interface for reporting unexpected failures.
type ErrorReporter interface {
	// CaptureError records err together with descriptive tags.
	CaptureError(ctx context.Context, err error, tags map[string]string)
}
