package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// Summary holds the derived figures of the current period.
type Summary struct {
	Period valueobject.Period

	CashIncome       decimal.Decimal
	CashRollover     decimal.Decimal
	MealCardIncome   decimal.Decimal
	MealCardRollover decimal.Decimal

	TotalFixed       decimal.Decimal
	TotalFixedPaid   decimal.Decimal
	TotalFixedUnpaid decimal.Decimal

	CashDailyIncome     decimal.Decimal
	CashDailySpend      decimal.Decimal
	MealCardDailyIncome decimal.Decimal
	MealCardDailySpend  decimal.Decimal

	RemainingCash     decimal.Decimal
	RemainingMealCard decimal.Decimal

	CCBalance    decimal.Decimal
	TotalDebtDue decimal.Decimal
	DebtIsCredit bool

	ActiveInstallments   int
	InstallmentRemaining decimal.Decimal

	GoldValue decimal.Decimal
}

// Summarize computes every derived figure of the current period.
func Summarize(state *entity.LedgerState) Summary {
	period := state.CurrentPeriod

	cashIncome, cashSpend := dailyMovements(state, period, valueobject.FundTypeCash)
	mealIncome, mealSpend := dailyMovements(state, period, valueobject.FundTypeMealCard)

	totalFixed := decimal.Zero
	for _, f := range state.FixedExpenses {
		totalFixed = totalFixed.Add(f.Amount)
	}
	paid := TotalFixedPaid(state)

	balance := CCBalance(state)

	active := 0
	remaining := decimal.Zero
	for _, p := range state.Installments {
		if p.IsActive() {
			active++
			remaining = remaining.Add(p.RemainingAmount())
		}
	}

	return Summary{
		Period:               period,
		CashIncome:           state.CashIncome,
		CashRollover:         state.CashRollover,
		MealCardIncome:       state.MealCardIncome,
		MealCardRollover:     state.MealCardRollover,
		TotalFixed:           totalFixed,
		TotalFixedPaid:       paid,
		TotalFixedUnpaid:     totalFixed.Sub(paid),
		CashDailyIncome:      cashIncome,
		CashDailySpend:       cashSpend,
		MealCardDailyIncome:  mealIncome,
		MealCardDailySpend:   mealSpend,
		RemainingCash:        RemainingCash(state),
		RemainingMealCard:    RemainingMealCard(state),
		CCBalance:            balance,
		TotalDebtDue:         balance.Abs(),
		DebtIsCredit:         balance.IsPositive(),
		ActiveInstallments:   active,
		InstallmentRemaining: remaining,
		GoldValue:            state.Gold.Value(state.GoldPrices),
	}
}

// RemainingCash returns cashIncome + cashRollover - paid fixed - net cash spend.
func RemainingCash(state *entity.LedgerState) decimal.Decimal {
	return state.CashIncome.
		Add(state.CashRollover).
		Sub(TotalFixedPaid(state)).
		Sub(TotalSpend(state, state.CurrentPeriod, valueobject.FundTypeCash))
}

// RemainingMealCard returns mealCardIncome + mealCardRollover - net meal-card spend.
func RemainingMealCard(state *entity.LedgerState) decimal.Decimal {
	return state.MealCardIncome.
		Add(state.MealCardRollover).
		Sub(TotalSpend(state, state.CurrentPeriod, valueobject.FundTypeMealCard))
}

// TotalDebtDue returns the absolute credit-card balance of the current period.
func TotalDebtDue(state *entity.LedgerState) decimal.Decimal {
	return CCBalance(state).Abs()
}

// TotalSpend returns the net spend of a fund in the period: the negated sum
// of its signed daily entries. Income entries therefore reduce it.
func TotalSpend(state *entity.LedgerState, period valueobject.Period, fund valueobject.FundType) decimal.Decimal {
	total := decimal.Zero
	for _, d := range state.DailyExpenses {
		if d.FundType == fund && d.InPeriod(period) {
			total = total.Add(d.Amount)
		}
	}
	return total.Neg()
}

// TotalFixedPaid returns the sum of the fixed expenses marked paid.
func TotalFixedPaid(state *entity.LedgerState) decimal.Decimal {
	total := decimal.Zero
	for _, f := range state.FixedExpenses {
		if f.IsPaid {
			total = total.Add(f.Amount)
		}
	}
	return total
}

// CCBalance returns the signed credit-card balance of the current period,
// including the projected installment entries. Negative means owed.
func CCBalance(state *entity.LedgerState) decimal.Decimal {
	total := decimal.Zero
	for _, c := range CCDebtsInPeriod(state, state.CurrentPeriod) {
		total = total.Add(c.Amount)
	}
	for _, c := range ProjectInstallments(state) {
		total = total.Add(c.Amount)
	}
	return total
}

// DailyExpensesInPeriod returns the daily entries dated within the period.
func DailyExpensesInPeriod(state *entity.LedgerState, period valueobject.Period) []entity.DailyExpense {
	entries := make([]entity.DailyExpense, 0)
	for _, d := range state.DailyExpenses {
		if d.InPeriod(period) {
			entries = append(entries, d)
		}
	}
	return entries
}

// CCDebtsInPeriod returns the stored credit-card rows of the period.
func CCDebtsInPeriod(state *entity.LedgerState, period valueobject.Period) []entity.CreditCardDebt {
	entries := make([]entity.CreditCardDebt, 0)
	for _, c := range state.CCDebts {
		if c.Period == period {
			entries = append(entries, c)
		}
	}
	return entries
}

// dailyMovements splits a fund's entries in the period into income and spend,
// both returned as non-negative amounts.
func dailyMovements(state *entity.LedgerState, period valueobject.Period, fund valueobject.FundType) (income, spend decimal.Decimal) {
	income, spend = decimal.Zero, decimal.Zero
	for _, d := range state.DailyExpenses {
		if d.FundType != fund || !d.InPeriod(period) {
			continue
		}
		if d.IsIncome() {
			income = income.Add(d.Amount)
		} else {
			spend = spend.Add(d.Amount.Neg())
		}
	}
	return income, spend
}
