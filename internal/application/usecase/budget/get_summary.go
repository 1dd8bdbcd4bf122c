package budget

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
)

// GetSummaryOutput represents the derived figures of the current period.
type GetSummaryOutput struct {
	Summary ledger.Summary
}

// GetSummaryUseCase computes the current period summary.
type GetSummaryUseCase struct {
	store *ledger.Store
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(store *ledger.Store) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		store: store,
	}
}

// Execute returns the summary.
func (uc *GetSummaryUseCase) Execute(_ context.Context) (*GetSummaryOutput, error) {
	state := uc.store.Snapshot()
	return &GetSummaryOutput{
		Summary: ledger.Summarize(&state),
	}, nil
}
