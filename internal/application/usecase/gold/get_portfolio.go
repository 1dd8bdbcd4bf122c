// Package gold contains the gold portfolio use cases.
package gold

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// PortfolioOutput represents the holdings valued at the stored prices.
type PortfolioOutput struct {
	Holdings entity.GoldHoldings
	Prices   entity.GoldPrices
	Value    decimal.Decimal
}

// GetPortfolioUseCase returns the gold portfolio.
type GetPortfolioUseCase struct {
	store *ledger.Store
}

// NewGetPortfolioUseCase creates a new GetPortfolioUseCase instance.
func NewGetPortfolioUseCase(store *ledger.Store) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		store: store,
	}
}

// Execute returns the portfolio.
func (uc *GetPortfolioUseCase) Execute(_ context.Context) (*PortfolioOutput, error) {
	return portfolioOf(uc.store.Snapshot()), nil
}

func portfolioOf(state entity.LedgerState) *PortfolioOutput {
	return &PortfolioOutput{
		Holdings: state.Gold,
		Prices:   state.GoldPrices,
		Value:    state.Gold.Value(state.GoldPrices),
	}
}
