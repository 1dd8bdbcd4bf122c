// Package period contains the period rollover use cases.
package period

import (
	"context"
	"log/slog"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/ledger"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// StartNewPeriodOutput represents the result of a manual rollover.
type StartNewPeriodOutput struct {
	Result ledger.RolloverResult
}

// StartNewPeriodUseCase closes the current period and opens the next one.
type StartNewPeriodUseCase struct {
	engine   *ledger.RolloverEngine
	reporter adapter.ErrorReporter
}

// NewStartNewPeriodUseCase creates a new StartNewPeriodUseCase instance.
func NewStartNewPeriodUseCase(engine *ledger.RolloverEngine, reporter adapter.ErrorReporter) *StartNewPeriodUseCase {
	return &StartNewPeriodUseCase{
		engine:   engine,
		reporter: reporter,
	}
}

// Execute runs one rollover. The ledger is left unchanged on failure.
func (uc *StartNewPeriodUseCase) Execute(ctx context.Context) (*StartNewPeriodOutput, error) {
	result, err := uc.engine.StartNewPeriod(ctx)
	if err != nil {
		slog.Error("Rollover failed", "error", err)
		if !domainerror.IsDomainError(err) {
			uc.reporter.CaptureError(ctx, err, map[string]string{"operation": "start_new_period"})
		}
		return nil, err
	}

	return &StartNewPeriodOutput{
		Result: *result,
	}, nil
}
