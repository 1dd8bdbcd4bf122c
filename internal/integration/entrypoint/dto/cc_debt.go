package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/ccdebt"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateCCDebtRequest represents the request body for a credit-card entry.
// A negative amount is a charge, a positive one a payment or refund.
type CreateCCDebtRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateCCDebtRequest represents the request body for a credit-card entry update.
type UpdateCCDebtRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// CCDebtResponse represents a single credit-card entry in API responses.
type CCDebtResponse struct {
	ID                string        `json:"id"`
	Description       string        `json:"description"`
	Amount            MoneyResponse `json:"amount"`
	IsCredit          bool          `json:"is_credit"`
	Period            string        `json:"period"`
	InstallmentID     string        `json:"installment_id,omitempty"`
	InstallmentNumber int           `json:"installment_number,omitempty"`
	TotalInstallments int           `json:"total_installments,omitempty"`
	Projected         bool          `json:"projected"`
}

// CCDebtListResponse represents the credit-card ledger of one period.
type CCDebtListResponse struct {
	Period      string           `json:"period"`
	Entries     []CCDebtResponse `json:"entries"`
	Projections []CCDebtResponse `json:"projections"`
	TotalDue    MoneyResponse    `json:"total_due"`
	IsCredit    bool             `json:"is_credit"`
}

// ToCCDebtResponse converts a credit-card entry to its DTO.
func ToCCDebtResponse(c entity.CreditCardDebt, projected bool) CCDebtResponse {
	return CCDebtResponse{
		ID:                c.ID,
		Description:       c.Description,
		Amount:            Due(c.Amount),
		IsCredit:          c.Amount.IsPositive(),
		Period:            string(c.Period),
		InstallmentID:     c.InstallmentID,
		InstallmentNumber: c.InstallmentNumber,
		TotalInstallments: c.TotalInstallments,
		Projected:         projected,
	}
}

// ToCCDebtResponses converts a list of credit-card entries.
func ToCCDebtResponses(items []entity.CreditCardDebt, projected bool) []CCDebtResponse {
	responses := make([]CCDebtResponse, len(items))
	for i, c := range items {
		responses[i] = ToCCDebtResponse(c, projected)
	}
	return responses
}

// ToCCDebtListResponse converts the list output.
func ToCCDebtListResponse(output *ccdebt.ListCCDebtsOutput) CCDebtListResponse {
	return CCDebtListResponse{
		Period:      string(output.Period),
		Entries:     ToCCDebtResponses(output.Entries, false),
		Projections: ToCCDebtResponses(output.Projections, true),
		TotalDue:    Due(output.TotalDue),
		IsCredit:    output.IsCredit,
	}
}
