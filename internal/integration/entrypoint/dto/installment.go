package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/usecase/installment"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateInstallmentRequest represents the request body for an installment plan.
type CreateInstallmentRequest struct {
	Description       string           `json:"description" binding:"required"`
	TotalAmount       *decimal.Decimal `json:"total_amount" binding:"required"`
	TotalInstallments int              `json:"total_installments"`
	InstallmentsPaid  int              `json:"installments_paid"`
}

// InstallmentResponse represents a single plan in API responses.
type InstallmentResponse struct {
	ID                    string        `json:"id"`
	Description           string        `json:"description"`
	TotalAmount           MoneyResponse `json:"total_amount"`
	MonthlyAmount         MoneyResponse `json:"monthly_amount"`
	TotalInstallments     int           `json:"total_installments"`
	InstallmentsPaid      int           `json:"installments_paid"`
	RemainingInstallments int           `json:"remaining_installments"`
	RemainingAmount       MoneyResponse `json:"remaining_amount"`
	Progress              string        `json:"progress"`
	Active                bool          `json:"active"`
	CreatedAt             time.Time     `json:"created_at"`
}

// InstallmentListResponse represents the response for listing plans.
type InstallmentListResponse struct {
	Installments   []InstallmentResponse `json:"installments"`
	TotalRemaining MoneyResponse         `json:"total_remaining"`
}

// ToInstallmentResponse converts a plan to its DTO.
func ToInstallmentResponse(p entity.InstallmentPlan) InstallmentResponse {
	return InstallmentResponse{
		ID:                    p.ID,
		Description:           p.Description,
		TotalAmount:           Money(p.TotalAmount),
		MonthlyAmount:         Money(p.MonthlyAmount()),
		TotalInstallments:     p.TotalInstallments,
		InstallmentsPaid:      p.InstallmentsPaid,
		RemainingInstallments: p.RemainingInstallments(),
		RemainingAmount:       Money(p.RemainingAmount()),
		Progress:              fmt.Sprintf("%d/%d", p.InstallmentsPaid, p.TotalInstallments),
		Active:                p.IsActive(),
		CreatedAt:             p.CreatedAt,
	}
}

// ToInstallmentResponses converts a list of plans.
func ToInstallmentResponses(items []entity.InstallmentPlan) []InstallmentResponse {
	responses := make([]InstallmentResponse, len(items))
	for i, p := range items {
		responses[i] = ToInstallmentResponse(p)
	}
	return responses
}

// ToInstallmentListResponse converts the list output.
func ToInstallmentListResponse(output *installment.ListInstallmentsOutput) InstallmentListResponse {
	responses := make([]InstallmentResponse, len(output.Plans))
	for i, v := range output.Plans {
		responses[i] = ToInstallmentResponse(v.Plan)
	}
	return InstallmentListResponse{
		Installments:   responses,
		TotalRemaining: Money(output.TotalRemaining),
	}
}
