package entity

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// LedgerState is the root aggregate: the unit of persistence and of
// export/import.
type LedgerState struct {
	CurrentPeriod    valueobject.Period
	CashIncome       decimal.Decimal
	CashRollover     decimal.Decimal
	MealCardIncome   decimal.Decimal
	MealCardRollover decimal.Decimal

	FixedExpenses []FixedExpense
	DailyExpenses []DailyExpense
	CCDebts       []CreditCardDebt
	Installments  []InstallmentPlan

	History    []PeriodHistory
	Gold       GoldHoldings
	GoldPrices GoldPrices
}

// NewLedgerState creates an empty ledger opened at the given period.
func NewLedgerState(period valueobject.Period) LedgerState {
	return LedgerState{
		CurrentPeriod: period,
		FixedExpenses: []FixedExpense{},
		DailyExpenses: []DailyExpense{},
		CCDebts:       []CreditCardDebt{},
		Installments:  []InstallmentPlan{},
		History:       []PeriodHistory{},
	}
}

// Clone returns a deep copy of the state.
func (s LedgerState) Clone() LedgerState {
	c := s
	c.FixedExpenses = append([]FixedExpense{}, s.FixedExpenses...)
	c.DailyExpenses = append([]DailyExpense{}, s.DailyExpenses...)
	c.CCDebts = append([]CreditCardDebt{}, s.CCDebts...)
	c.Installments = append([]InstallmentPlan{}, s.Installments...)
	c.History = make([]PeriodHistory, len(s.History))
	for i, h := range s.History {
		h.FixedExpenses = append([]FixedExpense{}, h.FixedExpenses...)
		c.History[i] = h
	}
	return c
}

// FindFixedExpense returns the index of the fixed expense with the id, or -1.
func (s *LedgerState) FindFixedExpense(id string) int {
	for i := range s.FixedExpenses {
		if s.FixedExpenses[i].ID == id {
			return i
		}
	}
	return -1
}

// FindDailyExpense returns the index of the daily expense with the id, or -1.
func (s *LedgerState) FindDailyExpense(id string) int {
	for i := range s.DailyExpenses {
		if s.DailyExpenses[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCCDebt returns the index of the credit-card entry with the id, or -1.
func (s *LedgerState) FindCCDebt(id string) int {
	for i := range s.CCDebts {
		if s.CCDebts[i].ID == id {
			return i
		}
	}
	return -1
}

// FindInstallment returns the index of the installment plan with the id, or -1.
func (s *LedgerState) FindInstallment(id string) int {
	for i := range s.Installments {
		if s.Installments[i].ID == id {
			return i
		}
	}
	return -1
}

// FindHistory returns the index of the archived period, or -1.
func (s *LedgerState) FindHistory(period valueobject.Period) int {
	for i := range s.History {
		if s.History[i].Period == period {
			return i
		}
	}
	return -1
}
