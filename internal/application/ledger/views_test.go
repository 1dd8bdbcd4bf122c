package ledger

import (
	"testing"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

func TestSummarize(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	state.CashIncome = dec("10000")
	state.CashRollover = dec("250")
	state.MealCardIncome = dec("2000")

	paid := entity.NewFixedExpense("Kira", dec("5000"))
	paid.IsPaid = true
	state.FixedExpenses = []entity.FixedExpense{*paid, *entity.NewFixedExpense("İnternet", dec("400"))}
	state.DailyExpenses = []entity.DailyExpense{
		*entity.NewDailyExpense("Market", dec("-500"), "2025-01-02", valueobject.FundTypeCash),
		*entity.NewDailyExpense("Harçlık", dec("100"), "2025-01-03", valueobject.FundTypeCash),
		*entity.NewDailyExpense("Öğle", dec("-200"), "2025-01-04", valueobject.FundTypeMealCard),
		*entity.NewDailyExpense("Eski", dec("-50"), "2024-12-30", valueobject.FundTypeCash),
	}
	state.CCDebts = []entity.CreditCardDebt{
		*entity.NewCreditCardDebt("Giyim", dec("-1500"), "2025-01"),
		*entity.NewCreditCardDebt("Ödeme", dec("500"), "2025-01"),
		*entity.NewCreditCardDebt("Geçmiş", dec("-9999"), "2024-12"),
	}
	state.Installments = []entity.InstallmentPlan{*entity.NewInstallmentPlan("TV", dec("6000"), 3)}

	s := Summarize(&state)

	checks := []struct {
		name     string
		got      string
		expected string
	}{
		{"remaining cash", s.RemainingCash.String(), "4850"},
		{"remaining meal card", s.RemainingMealCard.String(), "1800"},
		{"total fixed", s.TotalFixed.String(), "5400"},
		{"unpaid fixed", s.TotalFixedUnpaid.String(), "400"},
		{"cash income", s.CashDailyIncome.String(), "100"},
		{"cash spend", s.CashDailySpend.String(), "500"},
		{"card balance", s.CCBalance.String(), "-3000"},
		{"debt due", s.TotalDebtDue.String(), "3000"},
		{"installment remaining", s.InstallmentRemaining.String(), "6000"},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s: expected %s, got %s", c.name, c.expected, c.got)
		}
	}
	if s.DebtIsCredit {
		t.Error("expected balance to be payable")
	}
	if s.ActiveInstallments != 1 {
		t.Errorf("expected 1 active installment, got %d", s.ActiveInstallments)
	}
}

func TestRemainingCashScenario(t *testing.T) {
	state := entity.NewLedgerState("2025-01")
	state.CashIncome = dec("10000")
	fixed := entity.NewFixedExpense("Kira", dec("5000"))
	fixed.IsPaid = true
	state.FixedExpenses = []entity.FixedExpense{*fixed}
	state.DailyExpenses = []entity.DailyExpense{*entity.NewDailyExpense("Market", dec("-500"), "2025-01-15", valueobject.FundTypeCash)}

	if got := RemainingCash(&state); !got.Equal(dec("4500")) {
		t.Errorf("expected remaining cash 4500, got %s", got)
	}
}
