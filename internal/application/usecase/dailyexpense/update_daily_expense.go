package dailyexpense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// UpdateDailyExpenseInput represents the input for a daily expense update.
// Nil fields are left unchanged.
type UpdateDailyExpenseInput struct {
	ID          string
	Description *string
	Amount      *decimal.Decimal
	Date        *string
	FundType    *string
}

// UpdateDailyExpenseOutput represents the output of a daily expense update.
type UpdateDailyExpenseOutput struct {
	DailyExpense entity.DailyExpense
}

// UpdateDailyExpenseUseCase handles daily expense updates.
type UpdateDailyExpenseUseCase struct {
	store *ledger.Store
}

// NewUpdateDailyExpenseUseCase creates a new UpdateDailyExpenseUseCase instance.
func NewUpdateDailyExpenseUseCase(store *ledger.Store) *UpdateDailyExpenseUseCase {
	return &UpdateDailyExpenseUseCase{
		store: store,
	}
}

// Execute applies the given changes to one daily expense.
func (uc *UpdateDailyExpenseUseCase) Execute(ctx context.Context, input UpdateDailyExpenseInput) (*UpdateDailyExpenseOutput, error) {
	f, err := normalize(input.Description, input.Amount, input.Date, input.FundType)
	if err != nil {
		return nil, err
	}

	var updated entity.DailyExpense
	_, err = uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindDailyExpense(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("daily expense", input.ID)
		}

		expense := &state.DailyExpenses[i]
		if f.description != nil {
			expense.Description = *f.description
		}
		if f.amount != nil {
			expense.Amount = *f.amount
		}
		if f.date != nil {
			expense.Date = *f.date
		}
		if f.fundType != nil {
			expense.FundType = *f.fundType
		}
		updated = *expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateDailyExpenseOutput{
		DailyExpense: updated,
	}, nil
}
