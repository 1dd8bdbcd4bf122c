package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// InstallmentPlan represents a purchase split into equal monthly charges.
type InstallmentPlan struct {
	ID                string
	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	InstallmentsPaid  int
	CreatedAt         time.Time
}

// NewInstallmentPlan creates a new active InstallmentPlan.
func NewInstallmentPlan(description string, totalAmount decimal.Decimal, totalInstallments int) *InstallmentPlan {
	return &InstallmentPlan{
		ID:                uuid.NewString(),
		Description:       description,
		TotalAmount:       valueobject.RoundMoney(totalAmount),
		TotalInstallments: totalInstallments,
		CreatedAt:         time.Now().UTC(),
	}
}

// MonthlyAmount returns totalAmount / totalInstallments rounded to the minor unit.
func (p InstallmentPlan) MonthlyAmount() decimal.Decimal {
	if p.TotalInstallments <= 0 {
		return decimal.Zero
	}
	return p.TotalAmount.DivRound(decimal.NewFromInt(int64(p.TotalInstallments)), valueobject.MoneyScale)
}

// AmountOf returns the charge of the n-th installment (1-based).
// The last installment absorbs the rounding remainder so that all
// installments add up to TotalAmount.
func (p InstallmentPlan) AmountOf(n int) decimal.Decimal {
	monthly := p.MonthlyAmount()
	if n < p.TotalInstallments {
		return monthly
	}
	return p.TotalAmount.Sub(monthly.Mul(decimal.NewFromInt(int64(p.TotalInstallments - 1))))
}

// IsActive reports whether the plan still has unpaid installments.
func (p InstallmentPlan) IsActive() bool {
	return p.InstallmentsPaid < p.TotalInstallments
}

// RemainingInstallments returns the number of installments not yet charged.
func (p InstallmentPlan) RemainingInstallments() int {
	if p.InstallmentsPaid >= p.TotalInstallments {
		return 0
	}
	return p.TotalInstallments - p.InstallmentsPaid
}

// RemainingAmount returns the obligation not yet charged.
func (p InstallmentPlan) RemainingAmount() decimal.Decimal {
	remaining := decimal.Zero
	for n := p.InstallmentsPaid + 1; n <= p.TotalInstallments; n++ {
		remaining = remaining.Add(p.AmountOf(n))
	}
	return remaining
}
