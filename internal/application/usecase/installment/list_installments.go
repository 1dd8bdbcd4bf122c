package installment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// PlanView is an installment plan with its derived figures.
type PlanView struct {
	Plan                  entity.InstallmentPlan
	MonthlyAmount         decimal.Decimal
	RemainingInstallments int
	RemainingAmount       decimal.Decimal
	Active                bool
}

// ListInstallmentsOutput represents every plan, active ones first.
type ListInstallmentsOutput struct {
	Plans          []PlanView
	TotalRemaining decimal.Decimal
}

// ListInstallmentsUseCase lists installment plans.
type ListInstallmentsUseCase struct {
	store *ledger.Store
}

// NewListInstallmentsUseCase creates a new ListInstallmentsUseCase instance.
func NewListInstallmentsUseCase(store *ledger.Store) *ListInstallmentsUseCase {
	return &ListInstallmentsUseCase{
		store: store,
	}
}

// Execute returns every plan.
func (uc *ListInstallmentsUseCase) Execute(_ context.Context) (*ListInstallmentsOutput, error) {
	state := uc.store.Snapshot()

	active := make([]PlanView, 0, len(state.Installments))
	finished := make([]PlanView, 0)
	total := decimal.Zero
	for _, p := range state.Installments {
		view := PlanView{
			Plan:                  p,
			MonthlyAmount:         p.MonthlyAmount(),
			RemainingInstallments: p.RemainingInstallments(),
			RemainingAmount:       p.RemainingAmount(),
			Active:                p.IsActive(),
		}
		total = total.Add(view.RemainingAmount)
		if view.Active {
			active = append(active, view)
		} else {
			finished = append(finished, view)
		}
	}

	return &ListInstallmentsOutput{
		Plans:          append(active, finished...),
		TotalRemaining: total,
	}, nil
}
