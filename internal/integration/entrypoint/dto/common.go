// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error returned by the API.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Code    string               `json:"code,omitempty"`
	Details string               `json:"details,omitempty"`
	Fields  []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse describes one invalid field.
type FieldErrorResponse struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// MoneyResponse is an amount together with its display form.
type MoneyResponse struct {
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// Money keeps the sign of the amount.
func Money(amount decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Value:     amount,
		Formatted: valueobject.FormatTRY(amount),
	}
}

// Due drops the sign of the amount. The direction is carried by a
// separate flag on the response.
func Due(amount decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Value:     amount.Abs(),
		Formatted: valueobject.FormatDue(amount),
	}
}
