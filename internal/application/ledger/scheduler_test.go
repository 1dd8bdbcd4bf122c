package ledger

import (
	"errors"
	"testing"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

func TestProjectInstallments(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	active := entity.NewInstallmentPlan("Telefon", dec("6000"), 3)
	done := entity.NewInstallmentPlan("Laptop", dec("1200"), 2)
	done.InstallmentsPaid = 2
	state.Installments = []entity.InstallmentPlan{*active, *done}

	entries := ProjectInstallments(&state)

	if len(entries) != 1 {
		t.Fatalf("expected 1 projected entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Description != "Telefon (1/3)" {
		t.Errorf("expected description 'Telefon (1/3)', got %q", entry.Description)
	}
	if !entry.Amount.Equal(dec("-2000")) {
		t.Errorf("expected amount -2000, got %s", entry.Amount)
	}
	if entry.InstallmentID != active.ID || entry.Period != "2025-01" {
		t.Errorf("expected entry linked to plan and period, got %+v", entry)
	}
	if entry.ID != InstallmentEntryID(active.ID, "2025-01") {
		t.Error("expected deterministic entry id")
	}
}

func TestProjectInstallmentsIsIdempotent(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	plan := entity.NewInstallmentPlan("Koltuk", dec("3000"), 3)
	state.Installments = []entity.InstallmentPlan{*plan}

	first := ProjectInstallments(&state)
	second := ProjectInstallments(&state)
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatal("expected repeated projections to be identical")
	}
	if len(state.CCDebts) != 0 {
		t.Error("expected projections not to be stored")
	}

	if added := MaterializeInstallments(&state, "2025-01"); added != 1 {
		t.Fatalf("expected 1 materialized entry, got %d", added)
	}
	if added := MaterializeInstallments(&state, "2025-01"); added != 0 {
		t.Errorf("expected second materialization to add nothing, got %d", added)
	}
	if len(ProjectInstallments(&state)) != 0 {
		t.Error("expected no projection once the period entry is materialized")
	}
	if len(state.CCDebts) != 1 {
		t.Errorf("expected exactly one stored entry, got %d", len(state.CCDebts))
	}
}

func TestAdvanceInstallmentsClamps(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	plan := entity.NewInstallmentPlan("Tatil", dec("900"), 2)
	state.Installments = []entity.InstallmentPlan{*plan}

	for i := 0; i < 4; i++ {
		AdvanceInstallments(&state)
	}

	if got := state.Installments[0].InstallmentsPaid; got != 2 {
		t.Errorf("expected installments paid clamped at 2, got %d", got)
	}
	if AdvanceInstallments(&state) != 0 {
		t.Error("expected completed plan not to advance")
	}
}

func TestLastInstallmentAbsorbsRemainder(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	plan := entity.NewInstallmentPlan("Kurs", dec("1000"), 3)
	plan.InstallmentsPaid = 2
	state.Installments = []entity.InstallmentPlan{*plan}

	entries := ProjectInstallments(&state)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Description != "Kurs (3/3)" || !entries[0].Amount.Equal(dec("-333.34")) {
		t.Errorf("expected 'Kurs (3/3)' -333.34, got %q %s", entries[0].Description, entries[0].Amount)
	}
}

func TestProjectedInstallmentsAreAlwaysCharges(t *testing.T) {
	tests := []struct {
		name  string
		total string
		count int
	}{
		{name: "three years", total: "1000", count: 36},
		{name: "long plan rounding up", total: "200", count: 299},
		{name: "long plan rounding down", total: "100", count: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := entity.NewInstallmentPlan("Tablet", dec(tt.total), tt.count)
			if err := ValidateInstallmentPlan(*plan); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			sum := dec("0")
			for paid := 0; paid < tt.count; paid++ {
				plan.InstallmentsPaid = paid
				state := entity.NewLedgerState("2025-01")
				state.Installments = []entity.InstallmentPlan{*plan}

				entries := ProjectInstallments(&state)
				if len(entries) != 1 {
					t.Fatalf("expected 1 entry at %d paid, got %d", paid, len(entries))
				}
				if !entries[0].Amount.IsNegative() {
					t.Fatalf("expected a charge at installment %d, got %s", paid+1, entries[0].Amount)
				}
				sum = sum.Add(entries[0].Amount)
			}
			if !sum.Neg().Equal(plan.TotalAmount) {
				t.Errorf("expected charges to sum to %s, got %s", plan.TotalAmount, sum.Neg())
			}
		})
	}
}

func TestValidateInstallmentPlanRejectsCreditLastInstallment(t *testing.T) {
	plan := entity.NewInstallmentPlan("Tablet", dec("200"), 300)

	err := ValidateInstallmentPlan(*plan)
	if !errors.Is(err, domainerror.ErrArithmeticInconsistency) {
		t.Fatalf("expected ErrArithmeticInconsistency, got %v", err)
	}

	state := entity.NewLedgerState("2025-01")
	state.Installments = []entity.InstallmentPlan{*plan}
	if err := ValidateState(state); !errors.Is(err, domainerror.ErrArithmeticInconsistency) {
		t.Errorf("expected state validation to reject the plan, got %v", err)
	}
}
