// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// FixedExpense represents a recurring monthly obligation.
type FixedExpense struct {
	ID     string
	Title  string
	Amount decimal.Decimal
	IsPaid bool
	// CarriedFrom is set on obligations created by a rollover and holds
	// the period they were carried from.
	CarriedFrom valueobject.Period
}

// NewFixedExpense creates a new unpaid FixedExpense.
func NewFixedExpense(title string, amount decimal.Decimal) *FixedExpense {
	return &FixedExpense{
		ID:     uuid.NewString(),
		Title:  title,
		Amount: valueobject.RoundMoney(amount),
	}
}

// IsCarried reports whether the expense was created by a rollover.
func (f FixedExpense) IsCarried() bool {
	return f.CarriedFrom != ""
}
