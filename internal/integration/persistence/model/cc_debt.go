package model

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// CCDebtModel represents the cc_debts table in the database.
type CCDebtModel struct {
	ID                string          `gorm:"type:varchar(36);primaryKey"`
	Position          int             `gorm:"not null;index"`
	Description       string          `gorm:"type:varchar(255)"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period            string          `gorm:"type:varchar(7);not null;index"`
	InstallmentID     string          `gorm:"type:varchar(36);index"`
	InstallmentNumber int             `gorm:"not null;default:0"`
	TotalInstallments int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the CCDebtModel.
func (CCDebtModel) TableName() string {
	return "cc_debts"
}

// ToEntity converts a CCDebtModel to a domain CreditCardDebt entity.
func (m *CCDebtModel) ToEntity() entity.CreditCardDebt {
	return entity.CreditCardDebt{
		ID:                m.ID,
		Description:       m.Description,
		Amount:            m.Amount,
		Period:            valueobject.Period(m.Period),
		InstallmentID:     m.InstallmentID,
		InstallmentNumber: m.InstallmentNumber,
		TotalInstallments: m.TotalInstallments,
	}
}

// CCDebtFromEntity creates a CCDebtModel from a domain CreditCardDebt entity.
func CCDebtFromEntity(c entity.CreditCardDebt, position int) *CCDebtModel {
	return &CCDebtModel{
		ID:                c.ID,
		Position:          position,
		Description:       c.Description,
		Amount:            c.Amount,
		Period:            string(c.Period),
		InstallmentID:     c.InstallmentID,
		InstallmentNumber: c.InstallmentNumber,
		TotalInstallments: c.TotalInstallments,
	}
}
