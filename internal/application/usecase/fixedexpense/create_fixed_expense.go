package fixedexpense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	Title  string
	Amount decimal.Decimal
	IsPaid bool
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense entity.FixedExpense
}

// CreateFixedExpenseUseCase handles fixed expense creation.
type CreateFixedExpenseUseCase struct {
	store *ledger.Store
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(store *ledger.Store) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		store: store,
	}
}

// Execute appends a new fixed expense.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	if err := validateFields(&input.Title, &input.Amount); err != nil {
		return nil, err
	}

	expense := entity.NewFixedExpense(strings.TrimSpace(input.Title), input.Amount)
	expense.IsPaid = input.IsPaid

	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		state.FixedExpenses = append(state.FixedExpenses, *expense)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateFixedExpenseOutput{
		FixedExpense: *expense,
	}, nil
}
