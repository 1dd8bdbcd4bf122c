package budget

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GetLedgerOutput represents the full ledger together with the installment
// entries projected into the current period.
type GetLedgerOutput struct {
	State       entity.LedgerState
	Projections []entity.CreditCardDebt
	Summary     ledger.Summary
}

// GetLedgerUseCase returns the whole ledger.
type GetLedgerUseCase struct {
	store *ledger.Store
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(store *ledger.Store) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		store: store,
	}
}

// Execute returns a copy of the ledger.
func (uc *GetLedgerUseCase) Execute(_ context.Context) (*GetLedgerOutput, error) {
	state := uc.store.Snapshot()
	return &GetLedgerOutput{
		State:       state,
		Projections: ledger.ProjectInstallments(&state),
		Summary:     ledger.Summarize(&state),
	}, nil
}
