// Package snapshot contains the backup export and import use cases.
package snapshot

import (
	"context"
	"fmt"

	"github.com/budget-ledger/backend/internal/application/backup"
	"github.com/budget-ledger/backend/internal/application/ledger"
)

// ExportOutput represents an exported backup file.
type ExportOutput struct {
	Data     []byte
	Filename string
}

// ExportSnapshotUseCase exports the ledger as a JSON document.
type ExportSnapshotUseCase struct {
	store *ledger.Store
}

// NewExportSnapshotUseCase creates a new ExportSnapshotUseCase instance.
func NewExportSnapshotUseCase(store *ledger.Store) *ExportSnapshotUseCase {
	return &ExportSnapshotUseCase{
		store: store,
	}
}

// Execute encodes the current state.
func (uc *ExportSnapshotUseCase) Execute(_ context.Context) (*ExportOutput, error) {
	state := uc.store.Snapshot()

	data, err := backup.MarshalSnapshot(state)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Data:     data,
		Filename: fmt.Sprintf("butce-yedek-%s.json", state.CurrentPeriod),
	}, nil
}
