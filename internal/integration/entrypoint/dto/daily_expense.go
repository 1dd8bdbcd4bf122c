package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/dailyexpense"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateDailyExpenseRequest represents the request body for a daily entry.
// A negative amount is a spend, a positive one an income.
type CreateDailyExpenseRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Date        string           `json:"date,omitempty"`
	FundType    string           `json:"fund_type,omitempty"`
}

// UpdateDailyExpenseRequest represents the request body for a daily entry update.
type UpdateDailyExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	FundType    *string          `json:"fund_type,omitempty"`
}

// DailyExpenseResponse represents a single daily entry in API responses.
type DailyExpenseResponse struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Amount      MoneyResponse `json:"amount"`
	IsIncome    bool          `json:"is_income"`
	Date        string        `json:"date"`
	FundType    string        `json:"fund_type"`
}

// DailyExpenseListResponse represents the entries of one period.
type DailyExpenseListResponse struct {
	Period        string                 `json:"period"`
	PeriodLabel   string                 `json:"period_label"`
	DailyExpenses []DailyExpenseResponse `json:"daily_expenses"`
	CashSpend     MoneyResponse          `json:"cash_spend"`
	MealCardSpend MoneyResponse          `json:"meal_card_spend"`
}

// ToDailyExpenseResponse converts a daily entry to its DTO.
func ToDailyExpenseResponse(d entity.DailyExpense) DailyExpenseResponse {
	return DailyExpenseResponse{
		ID:          d.ID,
		Description: d.Description,
		Amount:      Due(d.Amount),
		IsIncome:    d.IsIncome(),
		Date:        d.Date,
		FundType:    string(d.FundType),
	}
}

// ToDailyExpenseResponses converts a list of daily entries.
func ToDailyExpenseResponses(items []entity.DailyExpense) []DailyExpenseResponse {
	responses := make([]DailyExpenseResponse, len(items))
	for i, d := range items {
		responses[i] = ToDailyExpenseResponse(d)
	}
	return responses
}

// ToDailyExpenseListResponse converts the list output.
func ToDailyExpenseListResponse(output *dailyexpense.ListDailyExpensesOutput) DailyExpenseListResponse {
	return DailyExpenseListResponse{
		Period:        string(output.Period),
		PeriodLabel:   output.Period.Label(),
		DailyExpenses: ToDailyExpenseResponses(output.DailyExpenses),
		CashSpend:     Money(output.CashSpend),
		MealCardSpend: Money(output.MealCardSpend),
	}
}
