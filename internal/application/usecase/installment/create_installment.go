// Package installment contains installment plan use cases.
package installment

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// CreateInstallmentInput represents the input for an installment plan.
// InstallmentsPaid lets a plan that started earlier be entered midway.
type CreateInstallmentInput struct {
	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	InstallmentsPaid  int
}

// CreateInstallmentOutput represents the output of plan creation.
type CreateInstallmentOutput struct {
	Plan entity.InstallmentPlan
}

// CreateInstallmentUseCase handles installment plan creation.
type CreateInstallmentUseCase struct {
	store *ledger.Store
}

// NewCreateInstallmentUseCase creates a new CreateInstallmentUseCase instance.
func NewCreateInstallmentUseCase(store *ledger.Store) *CreateInstallmentUseCase {
	return &CreateInstallmentUseCase{
		store: store,
	}
}

// Execute registers the plan. Its first unpaid installment shows up as a
// projected credit-card entry of the current period.
func (uc *CreateInstallmentUseCase) Execute(ctx context.Context, input CreateInstallmentInput) (*CreateInstallmentOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewValidationError(
			string(domainerror.ErrCodeInvalidInput),
			domainerror.FieldError{Field: "description", Reason: "description is required"},
		)
	}

	plan := entity.NewInstallmentPlan(description, input.TotalAmount, input.TotalInstallments)
	plan.InstallmentsPaid = input.InstallmentsPaid
	if err := ledger.ValidateInstallmentPlan(*plan); err != nil {
		return nil, err
	}

	_, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		state.Installments = append(state.Installments, *plan)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateInstallmentOutput{
		Plan: *plan,
	}, nil
}
