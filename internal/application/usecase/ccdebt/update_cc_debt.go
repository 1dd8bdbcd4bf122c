package ccdebt

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// UpdateCCDebtInput represents the input for a credit-card entry update.
// Nil fields are left unchanged.
type UpdateCCDebtInput struct {
	ID          string
	Description *string
	Amount      *decimal.Decimal
}

// UpdateCCDebtOutput represents the output of a credit-card entry update.
type UpdateCCDebtOutput struct {
	CCDebt entity.CreditCardDebt
}

// UpdateCCDebtUseCase handles credit-card entry updates.
type UpdateCCDebtUseCase struct {
	store *ledger.Store
}

// NewUpdateCCDebtUseCase creates a new UpdateCCDebtUseCase instance.
func NewUpdateCCDebtUseCase(store *ledger.Store) *UpdateCCDebtUseCase {
	return &UpdateCCDebtUseCase{
		store: store,
	}
}

// Execute applies the given changes to one entry.
func (uc *UpdateCCDebtUseCase) Execute(ctx context.Context, input UpdateCCDebtInput) (*UpdateCCDebtOutput, error) {
	if err := validateFields(input.Description, input.Amount); err != nil {
		return nil, err
	}

	var updated entity.CreditCardDebt
	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		i := state.FindCCDebt(input.ID)
		if i < 0 {
			return domainerror.NewNotFoundError("credit card entry", input.ID)
		}

		entry := &state.CCDebts[i]
		if err := checkEditable(state, *entry); err != nil {
			return err
		}
		if input.Description != nil {
			entry.Description = strings.TrimSpace(*input.Description)
		}
		if input.Amount != nil {
			entry.Amount = valueobject.RoundMoney(*input.Amount)
		}
		updated = *entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateCCDebtOutput{
		CCDebt: updated,
	}, nil
}

// checkEditable rejects changes to entries that are part of a closed period
// or were materialized from an installment plan.
func checkEditable(state *entity.LedgerState, entry entity.CreditCardDebt) error {
	if entry.IsInstallment() {
		return domainerror.NewEntryLockedError("credit card entry", entry.ID, "generated from an installment plan")
	}
	if entry.Period != state.CurrentPeriod {
		return domainerror.NewEntryLockedError("credit card entry", entry.ID, fmt.Sprintf("period %s is closed", entry.Period))
	}
	return nil
}
