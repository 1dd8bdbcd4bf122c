package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/application/usecase/budget"
)

// UpdateBudgetRequest represents the request body for a budget update.
type UpdateBudgetRequest struct {
	CashIncome       *decimal.Decimal `json:"cash_income,omitempty"`
	CashRollover     *decimal.Decimal `json:"cash_rollover,omitempty"`
	MealCardIncome   *decimal.Decimal `json:"meal_card_income,omitempty"`
	MealCardRollover *decimal.Decimal `json:"meal_card_rollover,omitempty"`
}

// SummaryResponse represents the derived figures of the current period.
type SummaryResponse struct {
	Period      string `json:"period"`
	PeriodLabel string `json:"period_label"`

	CashIncome       MoneyResponse `json:"cash_income"`
	CashRollover     MoneyResponse `json:"cash_rollover"`
	MealCardIncome   MoneyResponse `json:"meal_card_income"`
	MealCardRollover MoneyResponse `json:"meal_card_rollover"`

	TotalFixed       MoneyResponse `json:"total_fixed"`
	TotalFixedPaid   MoneyResponse `json:"total_fixed_paid"`
	TotalFixedUnpaid MoneyResponse `json:"total_fixed_unpaid"`

	CashDailyIncome     MoneyResponse `json:"cash_daily_income"`
	CashDailySpend      MoneyResponse `json:"cash_daily_spend"`
	MealCardDailyIncome MoneyResponse `json:"meal_card_daily_income"`
	MealCardDailySpend  MoneyResponse `json:"meal_card_daily_spend"`

	RemainingCash     MoneyResponse `json:"remaining_cash"`
	RemainingMealCard MoneyResponse `json:"remaining_meal_card"`

	TotalDebtDue MoneyResponse `json:"total_debt_due"`
	DebtIsCredit bool          `json:"debt_is_credit"`

	ActiveInstallments   int           `json:"active_installments"`
	InstallmentRemaining MoneyResponse `json:"installment_remaining"`

	GoldValue MoneyResponse `json:"gold_value"`
}

// LedgerResponse represents the whole ledger.
type LedgerResponse struct {
	Summary       SummaryResponse        `json:"summary"`
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
	DailyExpenses []DailyExpenseResponse `json:"daily_expenses"`
	CCDebts       []CCDebtResponse       `json:"cc_debts"`
	Projections   []CCDebtResponse       `json:"projections"`
	Installments  []InstallmentResponse  `json:"installments"`
	History       []HistoryResponse      `json:"history"`
	Gold          PortfolioResponse      `json:"gold"`
}

// ToSummaryResponse converts a ledger summary to its DTO.
func ToSummaryResponse(s ledger.Summary) SummaryResponse {
	return SummaryResponse{
		Period:               string(s.Period),
		PeriodLabel:          s.Period.Label(),
		CashIncome:           Money(s.CashIncome),
		CashRollover:         Money(s.CashRollover),
		MealCardIncome:       Money(s.MealCardIncome),
		MealCardRollover:     Money(s.MealCardRollover),
		TotalFixed:           Money(s.TotalFixed),
		TotalFixedPaid:       Money(s.TotalFixedPaid),
		TotalFixedUnpaid:     Money(s.TotalFixedUnpaid),
		CashDailyIncome:      Money(s.CashDailyIncome),
		CashDailySpend:       Money(s.CashDailySpend),
		MealCardDailyIncome:  Money(s.MealCardDailyIncome),
		MealCardDailySpend:   Money(s.MealCardDailySpend),
		RemainingCash:        Money(s.RemainingCash),
		RemainingMealCard:    Money(s.RemainingMealCard),
		TotalDebtDue:         Due(s.TotalDebtDue),
		DebtIsCredit:         s.DebtIsCredit,
		ActiveInstallments:   s.ActiveInstallments,
		InstallmentRemaining: Money(s.InstallmentRemaining),
		GoldValue:            Money(s.GoldValue),
	}
}

// ToLedgerResponse converts the full ledger output.
func ToLedgerResponse(output *budget.GetLedgerOutput) LedgerResponse {
	state := output.State
	return LedgerResponse{
		Summary:       ToSummaryResponse(output.Summary),
		FixedExpenses: ToFixedExpenseResponses(state.FixedExpenses),
		DailyExpenses: ToDailyExpenseResponses(state.DailyExpenses),
		CCDebts:       ToCCDebtResponses(state.CCDebts, false),
		Projections:   ToCCDebtResponses(output.Projections, true),
		Installments:  ToInstallmentResponses(state.Installments),
		History:       ToHistoryResponses(state.History),
		Gold:          ToPortfolioResponse(state.Gold, state.GoldPrices, output.Summary.GoldValue),
	}
}
