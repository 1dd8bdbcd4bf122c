package ledger

import (
	"fmt"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// ValidateState checks the structural invariants every committed state
// must satisfy. Installment plans whose amounts cannot be derived yield an
// arithmetic inconsistency error, every other problem a ValidationError.
func ValidateState(state entity.LedgerState) error {
	if err := validateInstallmentArithmetic(state.Installments); err != nil {
		return err
	}

	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))

	if !state.CurrentPeriod.IsValid() {
		verr.Add("currentPeriod", fmt.Sprintf("invalid period %q", state.CurrentPeriod))
	}

	seen := make(map[string]bool)
	checkID := func(field, id string) {
		if id == "" {
			verr.Add(field+".id", "missing id")
			return
		}
		key := field + "/" + id
		if seen[key] {
			verr.Add(field+".id", fmt.Sprintf("duplicate id %q", id))
		}
		seen[key] = true
	}

	for i, f := range state.FixedExpenses {
		field := fmt.Sprintf("fixedExpenses[%d]", i)
		checkID("fixedExpenses", f.ID)
		if f.Title == "" {
			verr.Add(field+".title", "title is required")
		}
		if f.Amount.IsNegative() {
			verr.Add(field+".amount", "amount must not be negative")
		}
	}

	for i, d := range state.DailyExpenses {
		field := fmt.Sprintf("dailyExpenses[%d]", i)
		checkID("dailyExpenses", d.ID)
		if !d.FundType.IsValid() {
			verr.Add(field+".fundType", fmt.Sprintf("invalid fund type %q", d.FundType))
		}
		if _, err := valueobject.ParseDate(d.Date); err != nil {
			verr.Add(field+".date", err.Error())
		}
	}

	for i, c := range state.CCDebts {
		field := fmt.Sprintf("ccDebts[%d]", i)
		checkID("ccDebts", c.ID)
		if !c.Period.IsValid() {
			verr.Add(field+".period", fmt.Sprintf("invalid period %q", c.Period))
		}
	}

	for _, p := range state.Installments {
		checkID("installments", p.ID)
	}

	for i, h := range state.History {
		if !h.Period.IsValid() {
			verr.Add(fmt.Sprintf("history[%d].period", i), fmt.Sprintf("invalid period %q", h.Period))
		}
	}

	if state.Gold.Gram22.IsNegative() || state.Gold.Gram24.IsNegative() || state.Gold.Resat.IsNegative() {
		verr.Add("gold", "holdings must not be negative")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ValidateInstallmentPlan rejects plans whose monthly amount cannot be derived
// or whose last installment would not be a charge.
func ValidateInstallmentPlan(p entity.InstallmentPlan) error {
	if p.TotalInstallments <= 0 {
		return domainerror.NewArithmeticError(fmt.Sprintf("installment plan %q must have at least one installment", p.Description))
	}
	if !p.TotalAmount.IsPositive() {
		return domainerror.NewArithmeticError(fmt.Sprintf("installment plan %q must have a positive total amount", p.Description))
	}
	if p.MonthlyAmount().IsZero() {
		return domainerror.NewArithmeticError(fmt.Sprintf("installment plan %q has a monthly amount below the minor unit", p.Description))
	}
	if !p.AmountOf(p.TotalInstallments).IsPositive() {
		return domainerror.NewArithmeticError(fmt.Sprintf("installment plan %q rounds to a last installment of %s", p.Description, p.AmountOf(p.TotalInstallments)))
	}
	if p.InstallmentsPaid < 0 || p.InstallmentsPaid > p.TotalInstallments {
		return domainerror.NewArithmeticError(fmt.Sprintf("installment plan %q has %d of %d installments paid", p.Description, p.InstallmentsPaid, p.TotalInstallments))
	}
	return nil
}

func validateInstallmentArithmetic(plans []entity.InstallmentPlan) error {
	for _, p := range plans {
		if err := ValidateInstallmentPlan(p); err != nil {
			return err
		}
	}
	return nil
}
