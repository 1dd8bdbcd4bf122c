// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// LedgerMetaID is the primary key of the single ledger row.
const LedgerMetaID = 1

// LedgerMetaModel represents the ledger_meta table: the scalar part of the
// ledger state, stored in a single row.
type LedgerMetaModel struct {
	ID               int             `gorm:"primaryKey;autoIncrement:false"`
	CurrentPeriod    string          `gorm:"type:varchar(7);not null"`
	CashIncome       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CashRollover     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MealCardIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MealCardRollover decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	GoldGram22       decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	GoldGram24       decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	GoldResat        decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	PriceGram22      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PriceGram24      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PriceResat       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PricesUpdatedAt  *time.Time
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the LedgerMetaModel.
func (LedgerMetaModel) TableName() string {
	return "ledger_meta"
}

// ApplyTo copies the scalar fields into the given state.
func (m *LedgerMetaModel) ApplyTo(state *entity.LedgerState) {
	state.CurrentPeriod = valueobject.Period(m.CurrentPeriod)
	state.CashIncome = m.CashIncome
	state.CashRollover = m.CashRollover
	state.MealCardIncome = m.MealCardIncome
	state.MealCardRollover = m.MealCardRollover
	state.Gold = entity.GoldHoldings{
		Gram22: m.GoldGram22,
		Gram24: m.GoldGram24,
		Resat:  m.GoldResat,
	}
	state.GoldPrices = entity.GoldPrices{
		Gram22: m.PriceGram22,
		Gram24: m.PriceGram24,
		Resat:  m.PriceResat,
	}
	if m.PricesUpdatedAt != nil {
		state.GoldPrices.LastUpdated = m.PricesUpdatedAt.UTC()
	}
}

// LedgerMetaFromEntity creates a LedgerMetaModel from the ledger state.
func LedgerMetaFromEntity(state *entity.LedgerState) *LedgerMetaModel {
	var pricesUpdatedAt *time.Time
	if !state.GoldPrices.LastUpdated.IsZero() {
		t := state.GoldPrices.LastUpdated.UTC()
		pricesUpdatedAt = &t
	}

	return &LedgerMetaModel{
		ID:               LedgerMetaID,
		CurrentPeriod:    string(state.CurrentPeriod),
		CashIncome:       state.CashIncome,
		CashRollover:     state.CashRollover,
		MealCardIncome:   state.MealCardIncome,
		MealCardRollover: state.MealCardRollover,
		GoldGram22:       state.Gold.Gram22,
		GoldGram24:       state.Gold.Gram24,
		GoldResat:        state.Gold.Resat,
		PriceGram22:      state.GoldPrices.Gram22,
		PriceGram24:      state.GoldPrices.Gram24,
		PriceResat:       state.GoldPrices.Resat,
		PricesUpdatedAt:  pricesUpdatedAt,
	}
}
