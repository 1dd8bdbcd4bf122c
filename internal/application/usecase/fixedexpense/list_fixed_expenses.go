package fixedexpense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListFixedExpensesOutput represents the fixed expenses with their totals.
type ListFixedExpensesOutput struct {
	FixedExpenses []entity.FixedExpense
	Total         decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalUnpaid   decimal.Decimal
}

// ListFixedExpensesUseCase lists the fixed expenses of the current period.
type ListFixedExpensesUseCase struct {
	store *ledger.Store
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(store *ledger.Store) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		store: store,
	}
}

// Execute returns every fixed expense.
func (uc *ListFixedExpensesUseCase) Execute(_ context.Context) (*ListFixedExpensesOutput, error) {
	state := uc.store.Snapshot()
	summary := ledger.Summarize(&state)

	return &ListFixedExpensesOutput{
		FixedExpenses: state.FixedExpenses,
		Total:         summary.TotalFixed,
		TotalPaid:     summary.TotalFixedPaid,
		TotalUnpaid:   summary.TotalFixedUnpaid,
	}, nil
}
