package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// DailyExpense represents a dated cash or meal-card movement.
// Negative amounts are spending, positive amounts are income.
type DailyExpense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
	FundType    valueobject.FundType
}

// NewDailyExpense creates a new DailyExpense.
func NewDailyExpense(description string, amount decimal.Decimal, date string, fundType valueobject.FundType) *DailyExpense {
	return &DailyExpense{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      valueobject.RoundMoney(amount),
		Date:        date,
		FundType:    fundType,
	}
}

// InPeriod reports whether the entry was made during the period.
func (d DailyExpense) InPeriod(p valueobject.Period) bool {
	return p.Contains(d.Date)
}

// IsIncome reports whether the entry adds to the fund.
func (d DailyExpense) IsIncome() bool {
	return d.Amount.IsPositive()
}
