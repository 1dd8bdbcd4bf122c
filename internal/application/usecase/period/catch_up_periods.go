package period

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/ledger"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// CatchUpPeriodsInput represents the input for an automatic rollover.
type CatchUpPeriodsInput struct {
	Now time.Time
}

// CatchUpPeriodsOutput lists every rollover that ran.
type CatchUpPeriodsOutput struct {
	Results []ledger.RolloverResult
}

// CatchUpPeriodsUseCase rolls the ledger forward to the calendar month.
// It runs at startup and from the scheduler.
type CatchUpPeriodsUseCase struct {
	engine   *ledger.RolloverEngine
	reporter adapter.ErrorReporter
}

// NewCatchUpPeriodsUseCase creates a new CatchUpPeriodsUseCase instance.
func NewCatchUpPeriodsUseCase(engine *ledger.RolloverEngine, reporter adapter.ErrorReporter) *CatchUpPeriodsUseCase {
	return &CatchUpPeriodsUseCase{
		engine:   engine,
		reporter: reporter,
	}
}

// Execute rolls over once per elapsed month. Rollovers completed before
// a failure stay committed and are returned with the error.
func (uc *CatchUpPeriodsUseCase) Execute(ctx context.Context, input CatchUpPeriodsInput) (*CatchUpPeriodsOutput, error) {
	results, err := uc.engine.CatchUp(ctx, input.Now)
	output := &CatchUpPeriodsOutput{
		Results: results,
	}
	if err != nil {
		slog.Error("Automatic rollover failed", "completed", len(results), "error", err)
		if !domainerror.IsDomainError(err) {
			uc.reporter.CaptureError(ctx, err, map[string]string{"operation": "catch_up_periods"})
		}
		return output, err
	}

	if len(results) > 0 {
		slog.Info("Ledger caught up", "rollovers", len(results), "period", results[len(results)-1].NewPeriod)
	}
	return output, nil
}
