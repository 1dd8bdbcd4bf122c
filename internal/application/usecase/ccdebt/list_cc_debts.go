package ccdebt

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// ListCCDebtsInput selects the period to list. Empty means the current period.
type ListCCDebtsInput struct {
	Period string
}

// ListCCDebtsOutput represents the credit-card ledger of one period.
// Projections are only present for the open period.
type ListCCDebtsOutput struct {
	Period      valueobject.Period
	Entries     []entity.CreditCardDebt
	Projections []entity.CreditCardDebt
	Balance     decimal.Decimal
	TotalDue    decimal.Decimal
	IsCredit    bool
}

// ListCCDebtsUseCase lists the credit-card ledger.
type ListCCDebtsUseCase struct {
	store *ledger.Store
}

// NewListCCDebtsUseCase creates a new ListCCDebtsUseCase instance.
func NewListCCDebtsUseCase(store *ledger.Store) *ListCCDebtsUseCase {
	return &ListCCDebtsUseCase{
		store: store,
	}
}

// Execute returns the stored entries of the period together with the
// projected installment entries when the period is still open.
func (uc *ListCCDebtsUseCase) Execute(_ context.Context, input ListCCDebtsInput) (*ListCCDebtsOutput, error) {
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

	out := &ListCCDebtsOutput{
		Period:      period,
		Entries:     ledger.CCDebtsInPeriod(&state, period),
		Projections: []entity.CreditCardDebt{},
	}

	if period == state.CurrentPeriod {
		out.Projections = ledger.ProjectInstallments(&state)
		out.Balance = ledger.CCBalance(&state)
	} else {
		balance := decimal.Zero
		for _, e := range out.Entries {
			balance = balance.Add(e.Amount)
		}
		out.Balance = balance
	}
	out.TotalDue = out.Balance.Abs()
	out.IsCredit = out.Balance.IsPositive()

	return out, nil
}
