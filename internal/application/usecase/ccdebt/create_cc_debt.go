// Package ccdebt contains credit-card ledger use cases.
package ccdebt

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// CreateCCDebtInput represents the input for a credit-card entry.
// Amount is signed: negative for charges, positive for payments.
type CreateCCDebtInput struct {
	Description string
	Amount      decimal.Decimal
}

// CreateCCDebtOutput represents the output of credit-card entry creation.
type CreateCCDebtOutput struct {
	CCDebt entity.CreditCardDebt
}

// CreateCCDebtUseCase records a manual credit-card entry in the current period.
type CreateCCDebtUseCase struct {
	store *ledger.Store
}

// NewCreateCCDebtUseCase creates a new CreateCCDebtUseCase instance.
func NewCreateCCDebtUseCase(store *ledger.Store) *CreateCCDebtUseCase {
	return &CreateCCDebtUseCase{
		store: store,
	}
}

// Execute appends the entry to the current period.
func (uc *CreateCCDebtUseCase) Execute(ctx context.Context, input CreateCCDebtInput) (*CreateCCDebtOutput, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateFields(&description, &input.Amount); err != nil {
		return nil, err
	}

	var created entity.CreditCardDebt
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		created = *entity.NewCreditCardDebt(description, input.Amount, state.CurrentPeriod)
		state.CCDebts = append(state.CCDebts, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateCCDebtOutput{
		CCDebt: created,
	}, nil
}

func validateFields(description *string, amount *decimal.Decimal) error {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))
	if description != nil && strings.TrimSpace(*description) == "" {
		verr.Add("description", "description is required")
	}
	if amount != nil && valueobject.RoundMoney(*amount).IsZero() {
		verr.Add("amount", "amount must not be zero")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
