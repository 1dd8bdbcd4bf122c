package model

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// DailyExpenseModel represents the daily_expenses table in the database.
type DailyExpenseModel struct {
	ID          string          `gorm:"type:varchar(36);primaryKey"`
	Position    int             `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        string          `gorm:"type:varchar(10);not null;index"`
	FundType    string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for the DailyExpenseModel.
func (DailyExpenseModel) TableName() string {
	return "daily_expenses"
}

// ToEntity converts a DailyExpenseModel to a domain DailyExpense entity.
func (m *DailyExpenseModel) ToEntity() entity.DailyExpense {
	return entity.DailyExpense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		FundType:    valueobject.FundType(m.FundType),
	}
}

// DailyExpenseFromEntity creates a DailyExpenseModel from a domain DailyExpense entity.
func DailyExpenseFromEntity(d entity.DailyExpense, position int) *DailyExpenseModel {
	return &DailyExpenseModel{
		ID:          d.ID,
		Position:    position,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		FundType:    string(d.FundType),
	}
}
