package ccdebt

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteCCDebtInput represents the input for credit-card entry deletion.
type DeleteCCDebtInput struct {
	ID string
}

// DeleteCCDebtUseCase handles credit-card entry deletion.
type DeleteCCDebtUseCase struct {
	store *ledger.Store
}

// NewDeleteCCDebtUseCase creates a new DeleteCCDebtUseCase instance.
func NewDeleteCCDebtUseCase(store *ledger.Store) *DeleteCCDebtUseCase {
	return &DeleteCCDebtUseCase{
		store: store,
	}
}

// Execute removes the manual entry of the current period with the given id.
// Projected installment entries are not stored and cannot be deleted.
func (uc *DeleteCCDebtUseCase) Execute(ctx context.Context, input DeleteCCDebtInput) error {
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindCCDebt(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("credit card entry", input.ID)
		}
		if err := checkEditable(state, state.CCDebts[i]); err != nil {
			return err
		}
		state.CCDebts = append(state.CCDebts[:i], state.CCDebts[i+1:]...)
		return nil
	})
	return err
}
