package dailyexpense

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// ListDailyExpensesInput selects the period to list. Empty means the
// current period.
type ListDailyExpensesInput struct {
	Period string
}

// ListDailyExpensesOutput represents the daily expenses of one period.
type ListDailyExpensesOutput struct {
	Period        valueobject.Period
	DailyExpenses []entity.DailyExpense
	CashSpend     decimal.Decimal
	MealCardSpend decimal.Decimal
}

// ListDailyExpensesUseCase lists daily expenses, newest first.
type ListDailyExpensesUseCase struct {
	store *ledger.Store
}

// NewListDailyExpensesUseCase creates a new ListDailyExpensesUseCase instance.
func NewListDailyExpensesUseCase(store *ledger.Store) *ListDailyExpensesUseCase {
	return &ListDailyExpensesUseCase{
		store: store,
	}
}

// Execute returns the daily expenses dated within the period.
func (uc *ListDailyExpensesUseCase) Execute(_ context.Context, input ListDailyExpensesInput) (*ListDailyExpensesOutput, error) {
	state := uc.store.Snapshot()

	period := state.CurrentPeriod
	if input.Period != "" {
		p, err := valueobject.ParsePeriod(input.Period)
		if err != nil {
			return nil, domainerror.NewValidationError(
				string(domainerror.ErrCodeInvalidInput),
				domainerror.FieldError{Field: "period", Reason: err.Error()},
			)
		}
		period = p
	}

	expenses := ledger.DailyExpensesInPeriod(&state, period)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	return &ListDailyExpensesOutput{
		Period:        period,
		DailyExpenses: expenses,
		CashSpend:     ledger.TotalSpend(&state, period, valueobject.FundTypeCash),
		MealCardSpend: ledger.TotalSpend(&state, period, valueobject.FundTypeMealCard),
	}, nil
}
