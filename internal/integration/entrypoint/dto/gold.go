package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateHoldingsRequest represents the request body for a holdings update.
type UpdateHoldingsRequest struct {
	Gram22 *decimal.Decimal `json:"gram22,omitempty"`
	Gram24 *decimal.Decimal `json:"gram24,omitempty"`
	Resat  *decimal.Decimal `json:"resat,omitempty"`
}

// UpdatePricesRequest represents manually entered unit prices.
type UpdatePricesRequest struct {
	Gram22 decimal.Decimal `json:"gram22"`
	Gram24 decimal.Decimal `json:"gram24"`
	Resat  decimal.Decimal `json:"resat"`
}

// HoldingsResponse represents the gold holdings.
type HoldingsResponse struct {
	Gram22 decimal.Decimal `json:"gram22"`
	Gram24 decimal.Decimal `json:"gram24"`
	Resat  decimal.Decimal `json:"resat"`
}

// PricesResponse represents the stored unit prices.
type PricesResponse struct {
	Gram22      MoneyResponse `json:"gram22"`
	Gram24      MoneyResponse `json:"gram24"`
	Resat       MoneyResponse `json:"resat"`
	LastUpdated *time.Time    `json:"last_updated,omitempty"`
}

// PortfolioResponse represents the gold portfolio.
type PortfolioResponse struct {
	Holdings  HoldingsResponse `json:"holdings"`
	Prices    PricesResponse   `json:"prices"`
	Value     MoneyResponse    `json:"value"`
	FromCache bool             `json:"from_cache,omitempty"`
}

// ToPortfolioResponse converts holdings and prices to their DTO.
func ToPortfolioResponse(holdings entity.GoldHoldings, prices entity.GoldPrices, value decimal.Decimal) PortfolioResponse {
	response := PortfolioResponse{
		Holdings: HoldingsResponse{
			Gram22: holdings.Gram22,
			Gram24: holdings.Gram24,
			Resat:  holdings.Resat,
		},
		Prices: PricesResponse{
			Gram22: Money(prices.Gram22),
			Gram24: Money(prices.Gram24),
			Resat:  Money(prices.Resat),
		},
		Value: Money(value),
	}
	if !prices.LastUpdated.IsZero() {
		updated := prices.LastUpdated
		response.Prices.LastUpdated = &updated
	}
	return response
}
