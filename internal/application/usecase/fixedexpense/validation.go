// Package fixedexpense contains fixed-expense use cases.
package fixedexpense

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

func validateFields(title *string, amount *decimal.Decimal) error {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))
	if title != nil && strings.TrimSpace(*title) == "" {
		verr.Add("title", "title is required")
	}
	if amount != nil && amount.IsNegative() {
		verr.Add("amount", "amount must not be negative")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
