package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldHoldings holds the gold portfolio: grams of 22 and 24 carat gold
// and the number of Reşat coins.
type GoldHoldings struct {
	Gram22 decimal.Decimal
	Gram24 decimal.Decimal
	Resat  decimal.Decimal
}

// GoldPrices holds the unit prices of each holding type.
type GoldPrices struct {
	Gram22      decimal.Decimal
	Gram24      decimal.Decimal
	Resat       decimal.Decimal
	LastUpdated time.Time
}

// IsZero reports whether no price has been recorded yet.
func (p GoldPrices) IsZero() bool {
	return p.Gram22.IsZero() && p.Gram24.IsZero() && p.Resat.IsZero()
}

// Value returns the portfolio value at the given prices.
func (h GoldHoldings) Value(prices GoldPrices) decimal.Decimal {
	return h.Gram22.Mul(prices.Gram22).
		Add(h.Gram24.Mul(prices.Gram24)).
		Add(h.Resat.Mul(prices.Resat)).
		Round(2)
}
