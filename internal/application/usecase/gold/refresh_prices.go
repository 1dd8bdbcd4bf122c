package gold

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// RefreshPricesInput represents a refresh request. Force skips the cache.
type RefreshPricesInput struct {
	Force bool
}

// RefreshPricesOutput represents the portfolio at the refreshed prices.
type RefreshPricesOutput struct {
	Portfolio PortfolioOutput
	FromCache bool
}

// RefreshPricesUseCase fetches current prices and stores them.
type RefreshPricesUseCase struct {
	store    *ledger.Store
	provider adapter.GoldPriceProvider
	cache    adapter.GoldPriceCache
	cacheTTL time.Duration
	reporter adapter.ErrorReporter
}

// NewRefreshPricesUseCase creates a new RefreshPricesUseCase instance.
// cache may be nil, in which case every refresh hits the provider.
func NewRefreshPricesUseCase(
	store *ledger.Store,
	provider adapter.GoldPriceProvider,
	cache adapter.GoldPriceCache,
	cacheTTL time.Duration,
	reporter adapter.ErrorReporter,
) *RefreshPricesUseCase {
	return &RefreshPricesUseCase{
		store:    store,
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		reporter: reporter,
	}
}

// Execute looks up the cache, falls back to the provider and persists the
// prices into the ledger.
func (uc *RefreshPricesUseCase) Execute(ctx context.Context, input RefreshPricesInput) (*RefreshPricesOutput, error) {
	prices, fromCache := uc.cached(ctx, input.Force)

	if prices == nil {
		fetched, err := uc.provider.FetchPrices(ctx)
		if err != nil {
			slog.Warn("Gold price refresh failed", "error", err)
			if errors.Is(err, domainerror.ErrGoldPriceUnavailable) || !domainerror.IsDomainError(err) {
				uc.reporter.CaptureError(ctx, err, map[string]string{"operation": "refresh_gold_prices"})
			}
			return nil, err
		}
		prices = fetched
	}

	state, err := uc.store.Update(ctx, func(state *entity.LedgerState) error {
		state.GoldPrices = *prices
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !fromCache && uc.cache != nil {
		if err := uc.cache.Set(ctx, *prices, uc.cacheTTL); err != nil {
			slog.Warn("Failed to cache gold prices", "error", err)
		}
	}

	return &RefreshPricesOutput{
		Portfolio: *portfolioOf(state),
		FromCache: fromCache,
	}, nil
}

func (uc *RefreshPricesUseCase) cached(ctx context.Context, force bool) (*entity.GoldPrices, bool) {
	if uc.cache == nil || force {
		return nil, false
	}
	prices, err := uc.cache.Get(ctx)
	if err != nil {
		slog.Warn("Gold price cache unavailable", "error", err)
		return nil, false
	}
	return prices, prices != nil
}
