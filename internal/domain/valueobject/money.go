// Package valueobject contains immutable value types shared by the domain layer.
package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for monetary amounts.
const MoneyScale = 2

// RoundMoney rounds an amount half away from zero to the minor unit.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// SumAmounts adds the given amounts.
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// ParseAmount parses a user supplied amount.
// Both "1234.56" and the Turkish "1.234,56" notation are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "₺")
	s = strings.TrimSpace(strings.TrimPrefix(s, "TL"))
	s = strings.TrimSpace(strings.TrimSuffix(s, "TL"))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	if strings.Contains(s, ",") {
		// Turkish notation: dots group thousands, comma separates decimals.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return RoundMoney(amount), nil
}
