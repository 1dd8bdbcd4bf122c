package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

const (
	// CarriedDebtTitle is the title of the fixed expense that carries an
	// unpaid credit-card balance into the next period.
	CarriedDebtTitle = "Kredi Kartı Borcu (Geçen Ay)"

	// CarriedCreditDescription describes a positive card balance carried
	// into the next period.
	CarriedCreditDescription = "Kredi Kartı Alacağı (Geçen Ay)"
)

// RolloverResult describes a completed rollover.
type RolloverResult struct {
	ClosedPeriod        valueobject.Period
	NewPeriod           valueobject.Period
	CashRollover        decimal.Decimal
	MealCardRollover    decimal.Decimal
	CarriedDebt         decimal.Decimal
	CarriedCredit       decimal.Decimal
	MaterializedEntries int
	AdvancedPlans       int
}

// RolloverEngine closes the current period and opens the next one.
type RolloverEngine struct {
	store *Store
}

// NewRolloverEngine creates a rollover engine working on the given store.
func NewRolloverEngine(store *Store) *RolloverEngine {
	return &RolloverEngine{
		store: store,
	}
}

// StartNewPeriod closes the current period in one transaction. Either every
// step is committed or the ledger is left unchanged.
func (e *RolloverEngine) StartNewPeriod(ctx context.Context) (*RolloverResult, error) {
	var result RolloverResult
	_, err := e.store.Update(ctx, func(state *entity.LedgerState) error {
		r, err := Rollover(state)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Period rolled over",
		"closed_period", result.ClosedPeriod,
		"new_period", result.NewPeriod,
		"cash_rollover", result.CashRollover.String(),
		"meal_card_rollover", result.MealCardRollover.String(),
		"carried_debt", result.CarriedDebt.String(),
		"materialized_entries", result.MaterializedEntries,
	)
	return &result, nil
}

// CatchUp rolls over until the current period reaches the calendar month
// of now. Each rollover is committed separately.
func (e *RolloverEngine) CatchUp(ctx context.Context, now time.Time) ([]RolloverResult, error) {
	target := valueobject.PeriodOf(now)
	var results []RolloverResult

	for {
		current := e.store.Snapshot().CurrentPeriod
		if !current.Before(target) {
			return results, nil
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := e.StartNewPeriod(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}
}

// Rollover applies the period close to state. On error state may be
// partially modified, so callers must run it on a copy.
func Rollover(state *entity.LedgerState) (RolloverResult, error) {
	closing := state.CurrentPeriod
	next, err := closing.Next()
	if err != nil {
		return RolloverResult{}, domainerror.NewLedgerError(
			domainerror.ErrCodeRolloverFailed,
			"current period is corrupt",
			fmt.Errorf("%w: %v", domainerror.ErrRolloverFailed, err),
		)
	}
	if err := validateInstallmentArithmetic(state.Installments); err != nil {
		return RolloverResult{}, domainerror.NewLedgerError(
			domainerror.ErrCodeRolloverFailed,
			"installment plans are inconsistent",
			fmt.Errorf("%w: %w", domainerror.ErrRolloverFailed, err),
		)
	}

	// 1. Closing aggregates.
	cashSpend := TotalSpend(state, closing, valueobject.FundTypeCash)
	mealSpend := TotalSpend(state, closing, valueobject.FundTypeMealCard)
	fixedPaid := TotalFixedPaid(state)
	ccBalance := CCBalance(state)

	// 2. Commit the projected installment entries, then advance the plans.
	materialized := MaterializeInstallments(state, closing)
	advanced := AdvanceInstallments(state)

	// 3-4. Carry the remaining budgets.
	cashRollover := state.CashIncome.Add(state.CashRollover).Sub(fixedPaid).Sub(cashSpend)
	mealRollover := state.MealCardIncome.Add(state.MealCardRollover).Sub(mealSpend)

	history := entity.PeriodHistory{
		Period:             closing,
		CashIncome:         state.CashIncome,
		CashRollover:       state.CashRollover,
		MealCardIncome:     state.MealCardIncome,
		MealCardRollover:   state.MealCardRollover,
		TotalCashSpend:     cashSpend,
		TotalMealCardSpend: mealSpend,
		TotalFixedPaid:     fixedPaid,
		TotalCCBalance:     ccBalance,
		ClosingCash:        cashRollover,
		ClosingMealCard:    mealRollover,
		FixedExpenses:      append([]entity.FixedExpense{}, state.FixedExpenses...),
	}

	// The previous carried obligation is replaced. An unpaid remainder is
	// folded into the new one so it stays owed.
	fixed := make([]entity.FixedExpense, 0, len(state.FixedExpenses)+1)
	unpaidCarried := decimal.Zero
	for _, f := range state.FixedExpenses {
		if f.IsCarried() {
			if !f.IsPaid {
				unpaidCarried = unpaidCarried.Add(f.Amount)
			}
			continue
		}
		fixed = append(fixed, f)
	}

	// 5. Carry the card balance.
	result := RolloverResult{
		ClosedPeriod:        closing,
		NewPeriod:           next,
		CashRollover:        cashRollover,
		MealCardRollover:    mealRollover,
		CarriedDebt:         decimal.Zero,
		CarriedCredit:       decimal.Zero,
		MaterializedEntries: materialized,
		AdvancedPlans:       advanced,
	}
	owed := ccBalance.Neg().Add(unpaidCarried)
	switch {
	case owed.IsPositive():
		result.CarriedDebt = owed
		fixed = append(fixed, entity.FixedExpense{
			ID:          uuid.NewString(),
			Title:       CarriedDebtTitle,
			Amount:      owed,
			CarriedFrom: closing,
		})
	case owed.IsNegative():
		result.CarriedCredit = owed.Neg()
		state.CCDebts = append(state.CCDebts, entity.CreditCardDebt{
			ID:          uuid.NewSHA1(installmentNamespace, []byte("credit|"+string(closing))).String(),
			Description: CarriedCreditDescription,
			Amount:      result.CarriedCredit,
			Period:      next,
		})
	}

	// 6. Every fixed expense starts the new period unpaid.
	for i := range fixed {
		fixed[i].IsPaid = false
	}
	state.FixedExpenses = fixed

	// 7. Archive and advance.
	if i := state.FindHistory(closing); i >= 0 {
		state.History[i] = history
	} else {
		state.History = append(state.History, history)
	}
	state.CashRollover = cashRollover
	state.MealCardRollover = mealRollover
	state.CurrentPeriod = next

	return result, nil
}
