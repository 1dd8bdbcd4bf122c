package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// installmentNamespace seeds the deterministic ids of installment entries.
var installmentNamespace = uuid.MustParse("6f1c2d0e-8a4b-5c3d-9e7f-1a2b3c4d5e6f")

// InstallmentEntryID returns the stable id of the entry a plan produces for
// a period. The same plan and period always yield the same id.
func InstallmentEntryID(planID string, period valueobject.Period) string {
	return uuid.NewSHA1(installmentNamespace, []byte(planID+"|"+string(period))).String()
}

// InstallmentDescription formats the description of the n-th installment.
func InstallmentDescription(plan entity.InstallmentPlan, n int) string {
	return fmt.Sprintf("%s (%d/%d)", plan.Description, n, plan.TotalInstallments)
}

// ProjectInstallments returns the entries the active plans produce for the
// current period. They are computed on every call and never stored.
func ProjectInstallments(state *entity.LedgerState) []entity.CreditCardDebt {
	return projectInstallments(state, state.CurrentPeriod)
}

func projectInstallments(state *entity.LedgerState, period valueobject.Period) []entity.CreditCardDebt {
	materialized := make(map[string]bool, len(state.CCDebts))
	for _, c := range state.CCDebts {
		if c.IsInstallment() {
			materialized[c.ID] = true
		}
	}

	entries := make([]entity.CreditCardDebt, 0, len(state.Installments))
	for _, plan := range state.Installments {
		if !plan.IsActive() {
			continue
		}

		id := InstallmentEntryID(plan.ID, period)
		if materialized[id] {
			continue
		}

		n := plan.InstallmentsPaid + 1
		entries = append(entries, entity.CreditCardDebt{
			ID:                id,
			Description:       InstallmentDescription(plan, n),
			Amount:            plan.AmountOf(n).Neg(),
			Period:            period,
			InstallmentID:     plan.ID,
			InstallmentNumber: n,
			TotalInstallments: plan.TotalInstallments,
		})
	}
	return entries
}

// MaterializeInstallments records the projected entries for period as
// permanent credit-card rows. Entries already recorded for the same plan
// and period are skipped. It returns the number of rows added.
func MaterializeInstallments(state *entity.LedgerState, period valueobject.Period) int {
	entries := projectInstallments(state, period)
	state.CCDebts = append(state.CCDebts, entries...)
	return len(entries)
}

// AdvanceInstallments marks one more installment paid on every active plan.
// It returns the number of plans that were advanced.
func AdvanceInstallments(state *entity.LedgerState) int {
	advanced := 0
	for i := range state.Installments {
		plan := &state.Installments[i]
		if !plan.IsActive() {
			continue
		}
		plan.InstallmentsPaid++
		advanced++
	}
	return advanced
}
