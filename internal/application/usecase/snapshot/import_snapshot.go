package snapshot

import (
	"context"
	"log/slog"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/backup"
	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ImportSnapshotInput represents the input for a JSON import.
// Importing replaces the whole ledger, so Confirm must be set.
type ImportSnapshotInput struct {
	Data    []byte
	Confirm bool
}

// ImportOutput describes the ledger after an import.
type ImportOutput struct {
	Period        string
	FixedExpenses int
	DailyExpenses int
	CCDebts       int
	Installments  int
	History       int
}

// ImportSnapshotUseCase replaces the ledger with an imported document.
type ImportSnapshotUseCase struct {
	store    *ledger.Store
	reporter adapter.ErrorReporter
}

// NewImportSnapshotUseCase creates a new ImportSnapshotUseCase instance.
func NewImportSnapshotUseCase(store *ledger.Store, reporter adapter.ErrorReporter) *ImportSnapshotUseCase {
	return &ImportSnapshotUseCase{
		store:    store,
		reporter: reporter,
	}
}

// Execute validates the document and swaps it in atomically. On any
// failure the ledger is left unchanged.
func (uc *ImportSnapshotUseCase) Execute(ctx context.Context, input ImportSnapshotInput) (*ImportOutput, error) {
	if !input.Confirm {
		return nil, notConfirmed()
	}

	state, err := backup.ImportSnapshot(input.Data, uc.store.Snapshot().CurrentPeriod)
	if err != nil {
		return nil, err
	}

	return replace(ctx, uc.store, uc.reporter, state, "import_snapshot")
}

func notConfirmed() error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeImportNotConfirmed,
		"import replaces the whole ledger and must be confirmed",
		domainerror.ErrImportNotConfirmed,
	)
}

func replace(ctx context.Context, store *ledger.Store, reporter adapter.ErrorReporter, state entity.LedgerState, operation string) (*ImportOutput, error) {
	if err := store.ReplaceAll(ctx, state); err != nil {
		slog.Error("Import failed", "operation", operation, "error", err)
		if !domainerror.IsDomainError(err) {
			reporter.CaptureError(ctx, err, map[string]string{"operation": operation})
		}
		return nil, err
	}

	slog.Info("Ledger imported",
		"operation", operation,
		"period", state.CurrentPeriod,
		"fixed_expenses", len(state.FixedExpenses),
		"daily_expenses", len(state.DailyExpenses),
	)
	return &ImportOutput{
		Period:        string(state.CurrentPeriod),
		FixedExpenses: len(state.FixedExpenses),
		DailyExpenses: len(state.DailyExpenses),
		CCDebts:       len(state.CCDebts),
		Installments:  len(state.Installments),
		History:       len(state.History),
	}, nil
}
