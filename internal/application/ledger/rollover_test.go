package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

func TestRolloverScenarios(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *entity.LedgerState)
		verify func(t *testing.T, s *entity.LedgerState, r RolloverResult)
	}{
		{
			name: "cash carries income minus paid fixed and spend",
			setup: func(s *entity.LedgerState) {
				s.CashIncome = dec("10000")
				fixed := entity.NewFixedExpense("Kira", dec("5000"))
				fixed.IsPaid = true
				s.FixedExpenses = append(s.FixedExpenses, *fixed)
				s.DailyExpenses = append(s.DailyExpenses, *entity.NewDailyExpense("Market", dec("-500"), "2025-01-10", valueobject.FundTypeCash))
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if !s.CashRollover.Equal(dec("4500")) {
					t.Errorf("expected cash rollover 4500, got %s", s.CashRollover)
				}
				if s.FixedExpenses[0].IsPaid {
					t.Error("expected fixed expense to be unpaid in the new period")
				}
			},
		},
		{
			name: "meal card carries income minus spend",
			setup: func(s *entity.LedgerState) {
				s.MealCardIncome = dec("2000")
				s.DailyExpenses = append(s.DailyExpenses, *entity.NewDailyExpense("Öğle", dec("-200"), "2025-01-03", valueobject.FundTypeMealCard))
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if !s.MealCardRollover.Equal(dec("1800")) {
					t.Errorf("expected meal card rollover 1800, got %s", s.MealCardRollover)
				}
			},
		},
		{
			name: "card debt is carried as a fixed expense",
			setup: func(s *entity.LedgerState) {
				s.CCDebts = append(s.CCDebts, *entity.NewCreditCardDebt("Market", dec("-1500"), s.CurrentPeriod))
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if len(s.FixedExpenses) != 1 {
					t.Fatalf("expected 1 carried fixed expense, got %d", len(s.FixedExpenses))
				}
				carried := s.FixedExpenses[0]
				if carried.Title != CarriedDebtTitle || !carried.Amount.Equal(dec("1500")) {
					t.Errorf("expected %q 1500, got %q %s", CarriedDebtTitle, carried.Title, carried.Amount)
				}
				if carried.IsPaid || carried.CarriedFrom != "2025-01" {
					t.Errorf("expected unpaid obligation carried from 2025-01, got %+v", carried)
				}
				if !TotalDebtDue(s).IsZero() {
					t.Errorf("expected no card balance in the new period, got %s", TotalDebtDue(s))
				}
			},
		},
		{
			name: "card credit is carried into the new period",
			setup: func(s *entity.LedgerState) {
				s.CCDebts = append(s.CCDebts, *entity.NewCreditCardDebt("İade", dec("300"), s.CurrentPeriod))
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if len(s.FixedExpenses) != 0 {
					t.Errorf("expected no carried debt, got %d fixed expenses", len(s.FixedExpenses))
				}
				if !CCBalance(s).Equal(dec("300")) {
					t.Errorf("expected carried credit 300, got %s", CCBalance(s))
				}
			},
		},
		{
			name: "overspend carries a negative cash rollover",
			setup: func(s *entity.LedgerState) {
				s.CashIncome = dec("1000")
				s.DailyExpenses = append(s.DailyExpenses, *entity.NewDailyExpense("Tamir", dec("-1250.50"), "2025-01-20", valueobject.FundTypeCash))
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if !s.CashRollover.Equal(dec("-250.50")) {
					t.Errorf("expected cash rollover -250.50, got %s", s.CashRollover)
				}
			},
		},
		{
			name: "daily income increases the rollover",
			setup: func(s *entity.LedgerState) {
				s.CashIncome = dec("1000")
				s.DailyExpenses = append(s.DailyExpenses,
					*entity.NewDailyExpense("Satış", dec("400"), "2025-01-05", valueobject.FundTypeCash),
					*entity.NewDailyExpense("Geçen ay", dec("-999"), "2024-12-31", valueobject.FundTypeCash),
				)
			},
			verify: func(t *testing.T, s *entity.LedgerState, r RolloverResult) {
				if !s.CashRollover.Equal(dec("1400")) {
					t.Errorf("expected cash rollover 1400, got %s", s.CashRollover)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := entity.NewLedgerState("2025-01")
			tt.setup(&state)

			result, err := Rollover(&state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if state.CurrentPeriod != "2025-02" || result.NewPeriod != "2025-02" {
				t.Errorf("expected new period 2025-02, got %s", state.CurrentPeriod)
			}
			tt.verify(t, &state, result)
		})
	}
}

func TestRolloverMaterializesInstallments(t *testing.T) {
	store, _ := newTestStore("2025-01")
	plan := entity.NewInstallmentPlan("Buzdolabı", dec("6000"), 3)

	_, err := store.Update(context.Background(), func(s *entity.LedgerState) error {
		s.Installments = append(s.Installments, *plan)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := store.Snapshot()
	projected := ProjectInstallments(&state)
	if len(projected) != 1 || projected[0].Description != "Buzdolabı (1/3)" || !projected[0].Amount.Equal(dec("-2000")) {
		t.Fatalf("expected projected 'Buzdolabı (1/3)' -2000, got %+v", projected)
	}
	if !state.Installments[0].MonthlyAmount().Equal(dec("2000")) {
		t.Errorf("expected monthly amount 2000, got %s", state.Installments[0].MonthlyAmount())
	}

	engine := NewRolloverEngine(store)
	result, err := engine.StartNewPeriod(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaterializedEntries != 1 || result.AdvancedPlans != 1 {
		t.Errorf("expected 1 materialized entry and 1 advanced plan, got %+v", result)
	}

	state = store.Snapshot()
	if state.Installments[0].InstallmentsPaid != 1 {
		t.Errorf("expected 1 installment paid, got %d", state.Installments[0].InstallmentsPaid)
	}

	closed := CCDebtsInPeriod(&state, "2025-01")
	if len(closed) != 1 || !closed[0].Amount.Equal(dec("-2000")) || closed[0].Description != "Buzdolabı (1/3)" {
		t.Fatalf("expected materialized -2000 entry for 2025-01, got %+v", closed)
	}

	projected = ProjectInstallments(&state)
	if len(projected) != 1 || projected[0].Description != "Buzdolabı (2/3)" {
		t.Fatalf("expected projected 'Buzdolabı (2/3)', got %+v", projected)
	}

	carried := state.FixedExpenses[len(state.FixedExpenses)-1]
	if carried.Title != CarriedDebtTitle || !carried.Amount.Equal(dec("2000")) {
		t.Errorf("expected carried card debt 2000, got %q %s", carried.Title, carried.Amount)
	}
}

func TestRolloverAdvancesExactlyOnce(t *testing.T) {
	store, repo := newTestStore("2025-11")
	_, err := store.Update(context.Background(), func(s *entity.LedgerState) error {
		s.Installments = append(s.Installments,
			*entity.NewInstallmentPlan("A", dec("300"), 3),
			*entity.NewInstallmentPlan("B", dec("100"), 1),
		)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := store.Snapshot()
	saves := repo.saves

	if _, err := NewRolloverEngine(store).StartNewPeriod(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := store.Snapshot()
	if after.CurrentPeriod != "2025-12" {
		t.Errorf("expected period 2025-12, got %s", after.CurrentPeriod)
	}
	for i := range after.Installments {
		if after.Installments[i].InstallmentsPaid != before.Installments[i].InstallmentsPaid+1 {
			t.Errorf("expected plan %d to advance by exactly one", i)
		}
	}
	if repo.saves != saves+1 {
		t.Errorf("expected one snapshot write, got %d", repo.saves-saves)
	}
	if len(after.History) != 1 || after.History[0].Period != "2025-11" {
		t.Errorf("expected history for 2025-11, got %+v", after.History)
	}
}

func TestRolloverReplacesCarriedDebt(t *testing.T) {
	tests := []struct {
		name           string
		carried        []entity.FixedExpense
		cardBalance    string
		expectedOwed   string
		expectedCash   string
		expectedCredit string
	}{
		{
			name: "paid carried debt is settled",
			carried: []entity.FixedExpense{
				{ID: "old", Title: CarriedDebtTitle, Amount: dec("1500"), IsPaid: true, CarriedFrom: "2025-01"},
			},
			cardBalance:    "0",
			expectedCash:   "3500",
			expectedCredit: "0",
		},
		{
			name: "unpaid carried debt is folded into the new obligation",
			carried: []entity.FixedExpense{
				{ID: "old", Title: CarriedDebtTitle, Amount: dec("700"), CarriedFrom: "2025-01"},
			},
			cardBalance:    "-1000",
			expectedOwed:   "1700",
			expectedCash:   "5000",
			expectedCredit: "0",
		},
		{
			name: "unpaid carried debt survives a quiet month",
			carried: []entity.FixedExpense{
				{ID: "old", Title: CarriedDebtTitle, Amount: dec("700"), CarriedFrom: "2025-01"},
			},
			cardBalance:    "0",
			expectedOwed:   "700",
			expectedCash:   "5000",
			expectedCredit: "0",
		},
		{
			name: "card credit offsets unpaid carried debt",
			carried: []entity.FixedExpense{
				{ID: "old", Title: CarriedDebtTitle, Amount: dec("200"), CarriedFrom: "2025-01"},
			},
			cardBalance:    "500",
			expectedCash:   "5000",
			expectedCredit: "300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := entity.NewLedgerState("2025-02")
			state.CashIncome = dec("5000")
			state.FixedExpenses = append(state.FixedExpenses, tt.carried...)
			if balance := dec(tt.cardBalance); !balance.IsZero() {
				state.CCDebts = append(state.CCDebts, *entity.NewCreditCardDebt("Kart", balance, state.CurrentPeriod))
			}

			result, err := Rollover(&state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !state.CashRollover.Equal(dec(tt.expectedCash)) {
				t.Errorf("expected cash rollover %s, got %s", tt.expectedCash, state.CashRollover)
			}
			if !result.CarriedCredit.Equal(dec(tt.expectedCredit)) {
				t.Errorf("expected carried credit %s, got %s", tt.expectedCredit, result.CarriedCredit)
			}

			if tt.expectedOwed == "" {
				if len(state.FixedExpenses) != 0 {
					t.Fatalf("expected no carried obligation, got %+v", state.FixedExpenses)
				}
				return
			}
			if len(state.FixedExpenses) != 1 {
				t.Fatalf("expected exactly one carried obligation, got %+v", state.FixedExpenses)
			}
			carried := state.FixedExpenses[0]
			if carried.ID == "old" || carried.CarriedFrom != "2025-02" || carried.IsPaid {
				t.Errorf("expected a new unpaid obligation carried from 2025-02, got %+v", carried)
			}
			if !carried.Amount.Equal(dec(tt.expectedOwed)) || !result.CarriedDebt.Equal(dec(tt.expectedOwed)) {
				t.Errorf("expected carried debt %s, got %s (result %s)", tt.expectedOwed, carried.Amount, result.CarriedDebt)
			}
		})
	}
}

func TestRepeatedRolloversKeepOneCarriedDebt(t *testing.T) {
	store, _ := newTestStore("2025-01")
	engine := NewRolloverEngine(store)

	for _, period := range []valueobject.Period{"2025-01", "2025-02"} {
		_, err := store.Update(context.Background(), func(s *entity.LedgerState) error {
			s.CCDebts = append(s.CCDebts, *entity.NewCreditCardDebt("Market", dec("-1000"), period))
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := engine.StartNewPeriod(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	state := store.Snapshot()
	var carried []entity.FixedExpense
	for _, f := range state.FixedExpenses {
		if f.IsCarried() {
			carried = append(carried, f)
		}
	}
	if len(carried) != 1 {
		t.Fatalf("expected one carried obligation, got %d", len(carried))
	}
	if carried[0].CarriedFrom != "2025-02" || !carried[0].Amount.Equal(dec("2000")) {
		t.Errorf("expected 2000 carried from 2025-02, got %s from %s", carried[0].Amount, carried[0].CarriedFrom)
	}
}

func TestRolloverAbortsOnCorruptState(t *testing.T) {
	store, repo := newTestStore("2025-01")

	// Corrupt the in-memory plan list behind the store's back.
	store.mu.Lock()
	store.state.Installments = []entity.InstallmentPlan{{ID: "x", Description: "bozuk", TotalAmount: dec("100"), TotalInstallments: 0}}
	store.state.CashIncome = dec("10")
	store.mu.Unlock()
	saves := repo.saves

	_, err := NewRolloverEngine(store).StartNewPeriod(context.Background())
	if !errors.Is(err, domainerror.ErrRolloverFailed) {
		t.Fatalf("expected rollover failure, got %v", err)
	}

	state := store.Snapshot()
	if state.CurrentPeriod != "2025-01" || !state.CashRollover.IsZero() || len(state.History) != 0 {
		t.Error("expected no partial rollover to be committed")
	}
	if repo.saves != saves {
		t.Error("expected nothing to be persisted")
	}
}

func TestCatchUp(t *testing.T) {
	store, _ := newTestStore("2024-11")
	engine := NewRolloverEngine(store)

	results, err := engine.CatchUp(context.Background(), time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 rollovers, got %d", len(results))
	}
	if got := store.Snapshot().CurrentPeriod; got != "2025-02" {
		t.Errorf("expected period 2025-02, got %s", got)
	}

	results, err = engine.CatchUp(context.Background(), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	if err != nil || len(results) != 0 {
		t.Errorf("expected no rollover within the same month, got %d (%v)", len(results), err)
	}
}
