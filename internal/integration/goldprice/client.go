// Package goldprice fetches gold unit prices from an HTTP source and caches
// them in Redis.
package goldprice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

const maxResponseBytes = 1 << 20

// quote is the price document served by the source. Prices may be bare
// numbers or strings in either "2450.50" or "2.450,50" notation.
type quote struct {
	Gram22 amount `json:"g22"`
	Gram24 amount `json:"g24"`
	Resat  amount `json:"resat"`
}

type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		d, err := valueobject.ParseAmount(raw)
		if err != nil {
			return err
		}
		a.Decimal = d
		return nil
	}
	return a.Decimal.UnmarshalJSON(data)
}

// client implements adapter.GoldPriceProvider over HTTP with retries.
type client struct {
	url         string
	retryClient *retryablehttp.Client
	now         func() time.Time
}

// NewClient creates a price provider for the configured source.
func NewClient(cfg *config.GoldPriceConfig) adapter.GoldPriceProvider {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = slog.Default()

	return &client{
		url:         cfg.URL,
		retryClient: retryClient,
		now:         time.Now,
	}
}

// FetchPrices retrieves the latest unit prices from the source.
func (c *client) FetchPrices(ctx context.Context) (*entity.GoldPrices, error) {
	if c.url == "" {
		return nil, domainerror.NewGoldError(
			domainerror.ErrCodeGoldProviderNotConfigured,
			"no gold price source configured",
			domainerror.ErrGoldProviderNotConfigured,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := c.retryClient.Do(retryReq)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, unavailable(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(fmt.Errorf("price source returned status %d", resp.StatusCode))
	}

	var q quote
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, unavailable(fmt.Errorf("invalid price document: %w", err))
	}
	if q.Gram22.IsNegative() || q.Gram24.IsNegative() || q.Resat.IsNegative() {
		return nil, unavailable(fmt.Errorf("negative price in document"))
	}
	if q.Gram22.IsZero() && q.Gram24.IsZero() && q.Resat.IsZero() {
		return nil, unavailable(fmt.Errorf("price document carries no prices"))
	}

	return &entity.GoldPrices{
		Gram22:      valueobject.RoundMoney(q.Gram22.Decimal),
		Gram24:      valueobject.RoundMoney(q.Gram24.Decimal),
		Resat:       valueobject.RoundMoney(q.Resat.Decimal),
		LastUpdated: c.now().UTC(),
	}, nil
}

func unavailable(err error) error {
	return domainerror.NewGoldError(
		domainerror.ErrCodeGoldPriceUnavailable,
		"failed to fetch gold prices",
		fmt.Errorf("%w: %v", domainerror.ErrGoldPriceUnavailable, err),
	)
}
