package installment

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteInstallmentInput represents the input for plan deletion.
type DeleteInstallmentInput struct {
	ID string
}

// DeleteInstallmentUseCase handles installment plan deletion.
type DeleteInstallmentUseCase struct {
	store *ledger.Store
}

// NewDeleteInstallmentUseCase creates a new DeleteInstallmentUseCase instance.
func NewDeleteInstallmentUseCase(store *ledger.Store) *DeleteInstallmentUseCase {
	return &DeleteInstallmentUseCase{
		store: store,
	}
}

// Execute removes the plan. Entries already materialized for closed
// periods stay in the credit-card ledger.
func (uc *DeleteInstallmentUseCase) Execute(ctx context.Context, input DeleteInstallmentInput) error {
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindInstallment(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("installment plan", input.ID)
		}
		state.Installments = append(state.Installments[:i], state.Installments[i+1:]...)
		return nil
	})
	return err
}
