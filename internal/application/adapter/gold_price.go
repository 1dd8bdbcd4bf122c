package adapter

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GoldPriceProvider defines the interface for fetching current gold prices.
type GoldPriceProvider interface {
	// FetchPrices retrieves the latest unit prices.
	FetchPrices(ctx context.Context) (*entity.GoldPrices, error)
}

// GoldPriceCache defines the interface for caching fetched gold prices.
type GoldPriceCache interface {
	// Get returns the cached prices, or nil when the cache is empty.
	Get(ctx context.Context) (*entity.GoldPrices, error)

	// Set stores prices for the given duration.
	Set(ctx context.Context, prices entity.GoldPrices, ttl time.Duration) error
}
