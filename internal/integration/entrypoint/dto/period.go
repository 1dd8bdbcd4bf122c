package dto

import (
	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// RolloverResponse represents a completed rollover.
type RolloverResponse struct {
	ClosedPeriod        string        `json:"closed_period"`
	NewPeriod           string        `json:"new_period"`
	CashRollover        MoneyResponse `json:"cash_rollover"`
	MealCardRollover    MoneyResponse `json:"meal_card_rollover"`
	CarriedDebt         MoneyResponse `json:"carried_debt"`
	CarriedCredit       MoneyResponse `json:"carried_credit"`
	MaterializedEntries int           `json:"materialized_entries"`
	AdvancedPlans       int           `json:"advanced_plans"`
}

// HistoryResponse represents an archived period.
type HistoryResponse struct {
	Period             string                 `json:"period"`
	PeriodLabel        string                 `json:"period_label"`
	CashIncome         MoneyResponse          `json:"cash_income"`
	CashRollover       MoneyResponse          `json:"cash_rollover"`
	MealCardIncome     MoneyResponse          `json:"meal_card_income"`
	MealCardRollover   MoneyResponse          `json:"meal_card_rollover"`
	TotalCashSpend     MoneyResponse          `json:"total_cash_spend"`
	TotalMealCardSpend MoneyResponse          `json:"total_meal_card_spend"`
	TotalFixedPaid     MoneyResponse          `json:"total_fixed_paid"`
	TotalCCDue         MoneyResponse          `json:"total_cc_due"`
	ClosingCash        MoneyResponse          `json:"closing_cash"`
	ClosingMealCard    MoneyResponse          `json:"closing_meal_card"`
	FixedExpenses      []FixedExpenseResponse `json:"fixed_expenses"`
}

// HistoryListResponse represents the response for listing closed periods.
type HistoryListResponse struct {
	History []HistoryResponse `json:"history"`
}

// ToRolloverResponse converts a rollover result to its DTO.
func ToRolloverResponse(r ledger.RolloverResult) RolloverResponse {
	return RolloverResponse{
		ClosedPeriod:        string(r.ClosedPeriod),
		NewPeriod:           string(r.NewPeriod),
		CashRollover:        Money(r.CashRollover),
		MealCardRollover:    Money(r.MealCardRollover),
		CarriedDebt:         Money(r.CarriedDebt),
		CarriedCredit:       Money(r.CarriedCredit),
		MaterializedEntries: r.MaterializedEntries,
		AdvancedPlans:       r.AdvancedPlans,
	}
}

// ToHistoryResponse converts an archived period to its DTO.
func ToHistoryResponse(h entity.PeriodHistory) HistoryResponse {
	return HistoryResponse{
		Period:             string(h.Period),
		PeriodLabel:        h.Period.Label(),
		CashIncome:         Money(h.CashIncome),
		CashRollover:       Money(h.CashRollover),
		MealCardIncome:     Money(h.MealCardIncome),
		MealCardRollover:   Money(h.MealCardRollover),
		TotalCashSpend:     Money(h.TotalCashSpend),
		TotalMealCardSpend: Money(h.TotalMealCardSpend),
		TotalFixedPaid:     Money(h.TotalFixedPaid),
		TotalCCDue:         Due(h.TotalCCBalance),
		ClosingCash:        Money(h.ClosingCash),
		ClosingMealCard:    Money(h.ClosingMealCard),
		FixedExpenses:      ToFixedExpenseResponses(h.FixedExpenses),
	}
}

// ToHistoryResponses converts a list of archived periods.
func ToHistoryResponses(items []entity.PeriodHistory) []HistoryResponse {
	responses := make([]HistoryResponse, len(items))
	for i, h := range items {
		responses[i] = ToHistoryResponse(h)
	}
	return responses
}
