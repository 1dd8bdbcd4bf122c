package snapshot

import (
	"context"
	"fmt"

	"github.com/budget-ledger/backend/internal/application/backup"
	"github.com/budget-ledger/backend/internal/application/ledger"
)

// ExportWorkbookUseCase exports the ledger as an xlsx workbook.
type ExportWorkbookUseCase struct {
	store *ledger.Store
}

// NewExportWorkbookUseCase creates a new ExportWorkbookUseCase instance.
func NewExportWorkbookUseCase(store *ledger.Store) *ExportWorkbookUseCase {
	return &ExportWorkbookUseCase{
		store: store,
	}
}

// Execute renders the workbook.
func (uc *ExportWorkbookUseCase) Execute(_ context.Context) (*ExportOutput, error) {
	state := uc.store.Snapshot()

	data, err := backup.ExportWorkbook(state)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Data:     data,
		Filename: fmt.Sprintf("butce-yedek-%s.xlsx", state.CurrentPeriod),
	}, nil
}
