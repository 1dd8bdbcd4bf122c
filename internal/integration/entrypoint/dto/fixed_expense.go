package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateFixedExpenseRequest represents the request body for fixed expense creation.
type CreateFixedExpenseRequest struct {
	Title  string           `json:"title" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	IsPaid bool             `json:"is_paid"`
}

// UpdateFixedExpenseRequest represents the request body for a fixed expense update.
type UpdateFixedExpenseRequest struct {
	Title  *string          `json:"title,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	IsPaid *bool            `json:"is_paid,omitempty"`
}

// FixedExpenseResponse represents a single fixed expense in API responses.
type FixedExpenseResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Amount      MoneyResponse `json:"amount"`
	IsPaid      bool          `json:"is_paid"`
	CarriedFrom string        `json:"carried_from,omitempty"`
}

// FixedExpenseListResponse represents the response for listing fixed expenses.
type FixedExpenseListResponse struct {
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
	Total         MoneyResponse          `json:"total"`
	TotalPaid     MoneyResponse          `json:"total_paid"`
	TotalUnpaid   MoneyResponse          `json:"total_unpaid"`
}

// ToFixedExpenseResponse converts a fixed expense to its DTO.
func ToFixedExpenseResponse(f entity.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:          f.ID,
		Title:       f.Title,
		Amount:      Money(f.Amount),
		IsPaid:      f.IsPaid,
		CarriedFrom: string(f.CarriedFrom),
	}
}

// ToFixedExpenseResponses converts a list of fixed expenses.
func ToFixedExpenseResponses(items []entity.FixedExpense) []FixedExpenseResponse {
	responses := make([]FixedExpenseResponse, len(items))
	for i, f := range items {
		responses[i] = ToFixedExpenseResponse(f)
	}
	return responses
}

// ToFixedExpenseListResponse converts the list output.
func ToFixedExpenseListResponse(output *fixedexpense.ListFixedExpensesOutput) FixedExpenseListResponse {
	return FixedExpenseListResponse{
		FixedExpenses: ToFixedExpenseResponses(output.FixedExpenses),
		Total:         Money(output.Total),
		TotalPaid:     Money(output.TotalPaid),
		TotalUnpaid:   Money(output.TotalUnpaid),
	}
}
