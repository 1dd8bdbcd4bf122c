package entity

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// PeriodHistory is the archived summary of a closed period.
type PeriodHistory struct {
	Period           valueobject.Period
	CashIncome       decimal.Decimal
	CashRollover     decimal.Decimal
	MealCardIncome   decimal.Decimal
	MealCardRollover decimal.Decimal

	TotalCashSpend     decimal.Decimal
	TotalMealCardSpend decimal.Decimal
	TotalFixedPaid     decimal.Decimal
	TotalCCBalance     decimal.Decimal

	ClosingCash     decimal.Decimal
	ClosingMealCard decimal.Decimal

	// FixedExpenses records each fixed expense with its paid state at close.
	FixedExpenses []FixedExpense
}
