package goldprice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CacheKey is the Redis key holding the last fetched prices.
const CacheKey = "budget-ledger:gold-prices"

// cachedPrices is the JSON form stored in Redis.
type cachedPrices struct {
	Gram22      decimal.Decimal `json:"g22"`
	Gram24      decimal.Decimal `json:"g24"`
	Resat       decimal.Decimal `json:"resat"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// redisCache implements adapter.GoldPriceCache on Redis.
type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache creates a price cache backed by the given client.
func NewRedisCache(rdb *redis.Client) adapter.GoldPriceCache {
	return &redisCache{
		rdb: rdb,
	}
}

// Get returns the cached prices, or nil on a miss.
func (c *redisCache) Get(ctx context.Context) (*entity.GoldPrices, error) {
	raw, err := c.rdb.Get(ctx, CacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached prices: %w", err)
	}

	var cached cachedPrices
	if err := json.Unmarshal(raw, &cached); err != nil {
		// A corrupt entry counts as a miss; the next Set overwrites it.
		return nil, nil
	}

	return &entity.GoldPrices{
		Gram22:      cached.Gram22,
		Gram24:      cached.Gram24,
		Resat:       cached.Resat,
		LastUpdated: cached.LastUpdated.UTC(),
	}, nil
}

// Set stores prices for the given duration.
func (c *redisCache) Set(ctx context.Context, prices entity.GoldPrices, ttl time.Duration) error {
	data, err := json.Marshal(cachedPrices{
		Gram22:      prices.Gram22,
		Gram24:      prices.Gram24,
		Resat:       prices.Resat,
		LastUpdated: prices.LastUpdated.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode prices: %w", err)
	}

	if err := c.rdb.Set(ctx, CacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache prices: %w", err)
	}
	return nil
}
