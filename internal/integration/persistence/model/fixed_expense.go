package model

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID          string          `gorm:"type:varchar(36);primaryKey"`
	Position    int             `gorm:"not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsPaid      bool            `gorm:"not null;default:false"`
	CarriedFrom string          `gorm:"type:varchar(7)"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() entity.FixedExpense {
	return entity.FixedExpense{
		ID:          m.ID,
		Title:       m.Title,
		Amount:      m.Amount,
		IsPaid:      m.IsPaid,
		CarriedFrom: valueobject.Period(m.CarriedFrom),
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(f entity.FixedExpense, position int) *FixedExpenseModel {
	return &FixedExpenseModel{
		ID:          f.ID,
		Position:    position,
		Title:       f.Title,
		Amount:      f.Amount,
		IsPaid:      f.IsPaid,
		CarriedFrom: string(f.CarriedFrom),
	}
}
