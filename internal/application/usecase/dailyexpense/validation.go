// Package dailyexpense contains daily-expense use cases.
package dailyexpense

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// fields holds the normalized values of a create or update request.
type fields struct {
	description *string
	amount      *decimal.Decimal
	date        *string
	fundType    *valueobject.FundType
}

func normalize(description *string, amount *decimal.Decimal, date *string, fundType *string) (fields, error) {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))
	var f fields

	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			verr.Add("description", "description is required")
		}
		f.description = &d
	}

	if amount != nil {
		if amount.IsZero() {
			verr.Add("amount", "amount must not be zero")
		}
		a := valueobject.RoundMoney(*amount)
		f.amount = &a
	}

	if date != nil {
		d, err := valueobject.ParseDate(*date)
		if err != nil {
			verr.Add("date", err.Error())
		}
		f.date = &d
	}

	if fundType != nil {
		ft, err := valueobject.ParseFundType(*fundType)
		if err != nil {
			verr.Add("fundType", err.Error())
		}
		f.fundType = &ft
	}

	if verr.HasErrors() {
		return fields{}, verr
	}
	return f, nil
}
