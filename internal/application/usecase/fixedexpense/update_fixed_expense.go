package fixedexpense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// UpdateFixedExpenseInput represents the input for a fixed expense update.
// Nil fields are left unchanged.
type UpdateFixedExpenseInput struct {
	ID     string
	Title  *string
	Amount *decimal.Decimal
	IsPaid *bool
}

// UpdateFixedExpenseOutput represents the output of a fixed expense update.
type UpdateFixedExpenseOutput struct {
	FixedExpense entity.FixedExpense
}

// UpdateFixedExpenseUseCase handles fixed expense updates.
type UpdateFixedExpenseUseCase struct {
	store *ledger.Store
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(store *ledger.Store) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		store: store,
	}
}

// Execute applies the given changes to one fixed expense.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*UpdateFixedExpenseOutput, error) {
	if err := validateFields(input.Title, input.Amount); err != nil {
		return nil, err
	}

	var updated entity.FixedExpense
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindFixedExpense(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("fixed expense", input.ID)
		}

		expense := &state.FixedExpenses[i]
		if input.Title != nil {
			expense.Title = strings.TrimSpace(*input.Title)
		}
		if input.Amount != nil {
			expense.Amount = valueobject.RoundMoney(*input.Amount)
		}
		if input.IsPaid != nil {
			expense.IsPaid = *input.IsPaid
		}
		updated = *expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateFixedExpenseOutput{
		FixedExpense: updated,
	}, nil
}
