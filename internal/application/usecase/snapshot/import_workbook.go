package snapshot

import (
	"context"
	"io"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/backup"
	"github.com/budget-ledger/backend/internal/application/ledger"
)

// ImportWorkbookInput represents the input for a workbook import.
type ImportWorkbookInput struct {
	File    io.Reader
	Confirm bool
}

// ImportWorkbookUseCase replaces the ledger with an uploaded workbook.
type ImportWorkbookUseCase struct {
	store    *ledger.Store
	reporter adapter.ErrorReporter
}

// NewImportWorkbookUseCase creates a new ImportWorkbookUseCase instance.
func NewImportWorkbookUseCase(store *ledger.Store, reporter adapter.ErrorReporter) *ImportWorkbookUseCase {
	return &ImportWorkbookUseCase{
		store:    store,
		reporter: reporter,
	}
}

// Execute parses the workbook and swaps it in atomically.
func (uc *ImportWorkbookUseCase) Execute(ctx context.Context, input ImportWorkbookInput) (*ImportOutput, error) {
	if !input.Confirm {
		return nil, notConfirmed()
	}

	state, err := backup.ImportWorkbook(input.File, uc.store.Snapshot().CurrentPeriod)
	if err != nil {
		return nil, err
	}

	return replace(ctx, uc.store, uc.reporter, state, "import_workbook")
}
