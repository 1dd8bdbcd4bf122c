package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// CreditCardDebt represents one row of the credit-card ledger.
// Negative amounts are charges, positive amounts are payments or credits.
type CreditCardDebt struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Period      valueobject.Period

	// Set on entries generated from an installment plan.
	InstallmentID     string
	InstallmentNumber int
	TotalInstallments int
}

// NewCreditCardDebt creates a manual credit-card ledger entry for the period.
func NewCreditCardDebt(description string, amount decimal.Decimal, period valueobject.Period) *CreditCardDebt {
	return &CreditCardDebt{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      valueobject.RoundMoney(amount),
		Period:      period,
	}
}

// IsInstallment reports whether the entry was generated from an installment plan.
func (c CreditCardDebt) IsInstallment() bool {
	return c.InstallmentID != ""
}
