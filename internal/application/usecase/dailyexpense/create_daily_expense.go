package dailyexpense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// CreateDailyExpenseInput represents the input for daily expense creation.
// Amount is signed: negative for spending, positive for income. An empty
// Date means today; an empty FundType means cash.
type CreateDailyExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string
	FundType    string
}

// CreateDailyExpenseOutput represents the output of daily expense creation.
type CreateDailyExpenseOutput struct {
	DailyExpense entity.DailyExpense
}

// CreateDailyExpenseUseCase handles daily expense creation.
type CreateDailyExpenseUseCase struct {
	store *ledger.Store
	now   func() time.Time
}

// NewCreateDailyExpenseUseCase creates a new CreateDailyExpenseUseCase instance.
func NewCreateDailyExpenseUseCase(store *ledger.Store, now func() time.Time) *CreateDailyExpenseUseCase {
	return &CreateDailyExpenseUseCase{
		store: store,
		now:   now,
	}
}

// Execute appends a new daily expense.
func (uc *CreateDailyExpenseUseCase) Execute(ctx context.Context, input CreateDailyExpenseInput) (*CreateDailyExpenseOutput, error) {
	if input.Date == "" {
		input.Date = valueobject.DateOf(uc.now())
	}
	if input.FundType == "" {
		input.FundType = string(valueobject.FundTypeCash)
	}

	f, err := normalize(&input.Description, &input.Amount, &input.Date, &input.FundType)
	if err != nil {
		return nil, err
	}

	expense := entity.NewDailyExpense(*f.description, *f.amount, *f.date, *f.fundType)
	_, err = uc.store.Update(ctx, func(state *entity.LedgerState) error {
		state.DailyExpenses = append(state.DailyExpenses, *expense)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateDailyExpenseOutput{
		DailyExpense: *expense,
	}, nil
}
