package gold

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// UpdatePricesInput represents manually entered unit prices.
type UpdatePricesInput struct {
	Gram22 decimal.Decimal
	Gram24 decimal.Decimal
	Resat  decimal.Decimal
}

// UpdatePricesUseCase stores manually entered prices.
type UpdatePricesUseCase struct {
	store *ledger.Store
	now   func() time.Time
}

// NewUpdatePricesUseCase creates a new UpdatePricesUseCase instance.
func NewUpdatePricesUseCase(store *ledger.Store, now func() time.Time) *UpdatePricesUseCase {
	return &UpdatePricesUseCase{
		store: store,
		now:   now,
	}
}

// Execute replaces the stored prices.
func (uc *UpdatePricesUseCase) Execute(ctx context.Context, input UpdatePricesInput) (*PortfolioOutput, error) {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidInput))
	if input.Gram22.IsNegative() {
		verr.Add("gram22", "must not be negative")
	}
	if input.Gram24.IsNegative() {
		verr.Add("gram24", "must not be negative")
	}
	if input.Resat.IsNegative() {
		verr.Add("resat", "must not be negative")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	prices := entity.GoldPrices{
		Gram22:      valueobject.RoundMoney(input.Gram22),
		Gram24:      valueobject.RoundMoney(input.Gram24),
		Resat:       valueobject.RoundMoney(input.Resat),
		LastUpdated: uc.now().UTC(),
	}
	state, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		state.GoldPrices = prices
		return nil
	})
	if err != nil {
		return nil, err
	}

	return portfolioOf(state), nil
}
