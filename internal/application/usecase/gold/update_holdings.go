package gold

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// UpdateHoldingsInput represents the new holdings. Nil fields are left unchanged.
type UpdateHoldingsInput struct {
	Gram22 *decimal.Decimal
	Gram24 *decimal.Decimal
	Resat  *decimal.Decimal
}

// UpdateHoldingsUseCase handles holdings changes.
type UpdateHoldingsUseCase struct {
	store *ledger.Store
}

// NewUpdateHoldingsUseCase creates a new UpdateHoldingsUseCase instance.
func NewUpdateHoldingsUseCase(store *ledger.Store) *UpdateHoldingsUseCase {
	return &UpdateHoldingsUseCase{
		store: store,
	}
}

// Execute sets the holdings.
func (uc *UpdateHoldingsUseCase) Execute(ctx context.Context, input UpdateHoldingsInput) (*PortfolioOutput, error) {
	fields := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"gram22", input.Gram22},
		{"gram24", input.Gram24},
		{"resat", input.Resat},
	}
	for _, f := range fields {
		if f.value != nil && f.value.IsNegative() {
			return nil, domainerror.NewGoldError(
				domainerror.ErrCodeInvalidGoldHoldings,
				fmt.Sprintf("%s must not be negative", f.name),
				nil,
			)
		}
	}

	state, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		if input.Gram22 != nil {
			state.Gold.Gram22 = input.Gram22.Round(3)
		}
		if input.Gram24 != nil {
			state.Gold.Gram24 = input.Gram24.Round(3)
		}
		if input.Resat != nil {
			state.Gold.Resat = input.Resat.Round(3)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return portfolioOf(state), nil
}
