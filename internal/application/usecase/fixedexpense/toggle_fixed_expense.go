package fixedexpense

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ToggleFixedExpenseInput represents the input for toggling the paid flag.
type ToggleFixedExpenseInput struct {
	ID string
}

// ToggleFixedExpenseOutput represents the output of a paid flag toggle.
type ToggleFixedExpenseOutput struct {
	FixedExpense entity.FixedExpense
}

// ToggleFixedExpenseUseCase flips the paid flag of a fixed expense.
type ToggleFixedExpenseUseCase struct {
	store *ledger.Store
}

// NewToggleFixedExpenseUseCase creates a new ToggleFixedExpenseUseCase instance.
func NewToggleFixedExpenseUseCase(store *ledger.Store) *ToggleFixedExpenseUseCase {
	return &ToggleFixedExpenseUseCase{
		store: store,
	}
}

// Execute flips the paid flag.
func (uc *ToggleFixedExpenseUseCase) Execute(ctx context.Context, input ToggleFixedExpenseInput) (*ToggleFixedExpenseOutput, error) {
	var toggled entity.FixedExpense
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindFixedExpense(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("fixed expense", input.ID)
		}
		state.FixedExpenses[i].IsPaid = !state.FixedExpenses[i].IsPaid
		toggled = state.FixedExpenses[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ToggleFixedExpenseOutput{
		FixedExpense: toggled,
	}, nil
}
