package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	ID string
}

// DeleteFixedExpenseUseCase handles fixed expense deletion.
type DeleteFixedExpenseUseCase struct {
	store *ledger.Store
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(store *ledger.Store) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		store: store,
	}
}

// Execute removes the fixed expense with the given id.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) error {
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindFixedExpense(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("fixed expense", input.ID)
		}
		state.FixedExpenses = append(state.FixedExpenses[:i], state.FixedExpenses[i+1:]...)
		return nil
	})
	return err
}
