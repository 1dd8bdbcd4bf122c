package dailyexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// DeleteDailyExpenseInput represents the input for daily expense deletion.
type DeleteDailyExpenseInput struct {
	ID string
}

// DeleteDailyExpenseUseCase handles daily expense deletion.
type DeleteDailyExpenseUseCase struct {
	store *ledger.Store
}

// NewDeleteDailyExpenseUseCase creates a new DeleteDailyExpenseUseCase instance.
func NewDeleteDailyExpenseUseCase(store *ledger.Store) *DeleteDailyExpenseUseCase {
	return &DeleteDailyExpenseUseCase{
		store: store,
	}
}

// Execute removes the daily expense with the given id.
func (uc *DeleteDailyExpenseUseCase) Execute(ctx context.Context, input DeleteDailyExpenseInput) error {
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindDailyExpense(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("daily expense", input.ID)
		}
		state.DailyExpenses = append(state.DailyExpenses[:i], state.DailyExpenses[i+1:]...)
		return nil
	})
	return err
}
