package model

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// ArchivedFixedExpense is a fixed expense frozen into a history record.
type ArchivedFixedExpense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	IsPaid      bool            `json:"isPaid"`
	CarriedFrom string          `json:"carriedFrom,omitempty"`
}

// PeriodHistoryModel represents the period_history table in the database.
type PeriodHistoryModel struct {
	Period             string                 `gorm:"type:varchar(7);primaryKey"`
	CashIncome         decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	CashRollover       decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	MealCardIncome     decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	MealCardRollover   decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	TotalCashSpend     decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	TotalMealCardSpend decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	TotalFixedPaid     decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	TotalCCBalance     decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	ClosingCash        decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	ClosingMealCard    decimal.Decimal        `gorm:"type:decimal(15,2);not null"`
	FixedExpenses      []ArchivedFixedExpense `gorm:"serializer:json"`
}

// TableName returns the table name for the PeriodHistoryModel.
func (PeriodHistoryModel) TableName() string {
	return "period_history"
}

// ToEntity converts a PeriodHistoryModel to a domain PeriodHistory entity.
func (m *PeriodHistoryModel) ToEntity() entity.PeriodHistory {
	fixed := make([]entity.FixedExpense, 0, len(m.FixedExpenses))
	for _, f := range m.FixedExpenses {
		fixed = append(fixed, entity.FixedExpense{
			ID:          f.ID,
			Title:       f.Title,
			Amount:      f.Amount,
			IsPaid:      f.IsPaid,
			CarriedFrom: valueobject.Period(f.CarriedFrom),
		})
	}

	return entity.PeriodHistory{
		Period:             valueobject.Period(m.Period),
		CashIncome:         m.CashIncome,
		CashRollover:       m.CashRollover,
		MealCardIncome:     m.MealCardIncome,
		MealCardRollover:   m.MealCardRollover,
		TotalCashSpend:     m.TotalCashSpend,
		TotalMealCardSpend: m.TotalMealCardSpend,
		TotalFixedPaid:     m.TotalFixedPaid,
		TotalCCBalance:     m.TotalCCBalance,
		ClosingCash:        m.ClosingCash,
		ClosingMealCard:    m.ClosingMealCard,
		FixedExpenses:      fixed,
	}
}

// PeriodHistoryFromEntity creates a PeriodHistoryModel from a domain PeriodHistory entity.
func PeriodHistoryFromEntity(h entity.PeriodHistory) *PeriodHistoryModel {
	fixed := make([]ArchivedFixedExpense, 0, len(h.FixedExpenses))
	for _, f := range h.FixedExpenses {
		fixed = append(fixed, ArchivedFixedExpense{
			ID:          f.ID,
			Title:       f.Title,
			Amount:      f.Amount,
			IsPaid:      f.IsPaid,
			CarriedFrom: string(f.CarriedFrom),
		})
	}

	return &PeriodHistoryModel{
		Period:             string(h.Period),
		CashIncome:         h.CashIncome,
		CashRollover:       h.CashRollover,
		MealCardIncome:     h.MealCardIncome,
		MealCardRollover:   h.MealCardRollover,
		TotalCashSpend:     h.TotalCashSpend,
		TotalMealCardSpend: h.TotalMealCardSpend,
		TotalFixedPaid:     h.TotalFixedPaid,
		TotalCCBalance:     h.TotalCCBalance,
		ClosingCash:        h.ClosingCash,
		ClosingMealCard:    h.ClosingMealCard,
		FixedExpenses:      fixed,
	}
}

// AllModels lists every ledger table for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&LedgerMetaModel{},
		&FixedExpenseModel{},
		&DailyExpenseModel{},
		&CCDebtModel{},
		&InstallmentModel{},
		&PeriodHistoryModel{},
	}
}
