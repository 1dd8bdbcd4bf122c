// Package budget contains use cases for the period budget and its views.
package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// UpdateBudgetInput represents the input for a budget update.
// Nil fields are left unchanged. Rollovers may be negative when the
// previous period was overspent.
type UpdateBudgetInput struct {
	CashIncome       *decimal.Decimal
	CashRollover     *decimal.Decimal
	MealCardIncome   *decimal.Decimal
	MealCardRollover *decimal.Decimal
}

// UpdateBudgetOutput represents the budget after the update.
type UpdateBudgetOutput struct {
	Summary ledger.Summary
}

// UpdateBudgetUseCase handles changes to the period incomes and rollovers.
type UpdateBudgetUseCase struct {
	store *ledger.Store
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(store *ledger.Store) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		store: store,
	}
}

// Execute sets the given budget figures.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))
	if input.CashIncome != nil && input.CashIncome.IsNegative() {
		verr.Add("cashIncome", "must not be negative")
	}
	if input.MealCardIncome != nil && input.MealCardIncome.IsNegative() {
		verr.Add("mealCardIncome", "must not be negative")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	state, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		set(&state.CashIncome, input.CashIncome)
		set(&state.CashRollover, input.CashRollover)
		set(&state.MealCardIncome, input.MealCardIncome)
		set(&state.MealCardRollover, input.MealCardRollover)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{
		Summary: ledger.Summarize(&state),
	}, nil
}

func set(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = valueobject.RoundMoney(*v)
	}
}
