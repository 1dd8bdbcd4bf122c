package gold

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger/ledgertest"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

type stubProvider struct {
	prices *entity.GoldPrices
	err    error
	calls  int
}

func (p *stubProvider) FetchPrices(_ context.Context) (*entity.GoldPrices, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	prices := *p.prices
	return &prices, nil
}

type memoryCache struct {
	prices *entity.GoldPrices
	sets   int
	ttl    time.Duration
}

func (c *memoryCache) Get(_ context.Context) (*entity.GoldPrices, error) {
	if c.prices == nil {
		return nil, nil
	}
	prices := *c.prices
	return &prices, nil
}

func (c *memoryCache) Set(_ context.Context, prices entity.GoldPrices, ttl time.Duration) error {
	c.prices = &prices
	c.sets++
	c.ttl = ttl
	return nil
}

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) CaptureError(_ context.Context, err error, _ map[string]string) {
	r.errs = append(r.errs, err)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func samplePrices() *entity.GoldPrices {
	return &entity.GoldPrices{
		Gram22:      decimal.NewFromInt(2800),
		Gram24:      decimal.NewFromInt(3000),
		Resat:       decimal.NewFromInt(21000),
		LastUpdated: fixedNow,
	}
}

func TestUpdateHoldingsAndPortfolio(t *testing.T) {
	initial := entity.NewLedgerState("2025-03")
	initial.GoldPrices = *samplePrices()
	store, _ := ledgertest.NewStore(t, initial)
	ctx := context.Background()

	_, err := NewUpdateHoldingsUseCase(store).Execute(ctx, UpdateHoldingsInput{Gram22: dec(10), Resat: dec(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewGetPortfolioUseCase(store).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10 * 2800 + 1 * 21000
	if !out.Value.Equal(decimal.NewFromInt(49000)) {
		t.Errorf("expected value 49000, got %s", out.Value)
	}
}

func TestUpdateHoldingsRejectsNegative(t *testing.T) {
	store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-03"))

	_, err := NewUpdateHoldingsUseCase(store).Execute(context.Background(), UpdateHoldingsInput{Gram24: dec(-1)})

	var goldErr *domainerror.GoldError
	if !errors.As(err, &goldErr) || goldErr.Code != domainerror.ErrCodeInvalidGoldHoldings {
		t.Fatalf("expected code %s, got %v", domainerror.ErrCodeInvalidGoldHoldings, err)
	}
	if repo.Saves() != 0 {
		t.Errorf("expected no save, got %d", repo.Saves())
	}
}

func TestUpdatePricesStampsTime(t *testing.T) {
	store, _ := ledgertest.NewStore(t, entity.NewLedgerState("2025-03"))

	out, err := NewUpdatePricesUseCase(store, func() time.Time { return fixedNow }).Execute(context.Background(), UpdatePricesInput{
		Gram22: decimal.RequireFromString("2800.456"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Prices.LastUpdated.Equal(fixedNow) {
		t.Errorf("expected LastUpdated %v, got %v", fixedNow, out.Prices.LastUpdated)
	}
	if !out.Prices.Gram22.Equal(decimal.RequireFromString("2800.46")) {
		t.Errorf("expected rounded price 2800.46, got %s", out.Prices.Gram22)
	}
}

func TestRefreshPrices(t *testing.T) {
	tests := []struct {
		name          string
		cached        *entity.GoldPrices
		force         bool
		wantCalls     int
		wantFromCache bool
		wantSets      int
	}{
		{name: "cache miss hits the provider", wantCalls: 1, wantSets: 1},
		{name: "cache hit skips the provider", cached: samplePrices(), wantFromCache: true},
		{name: "force bypasses the cache", cached: samplePrices(), force: true, wantCalls: 1, wantSets: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-03"))
			provider := &stubProvider{prices: samplePrices()}
			cache := &memoryCache{prices: tt.cached}

			out, err := NewRefreshPricesUseCase(store, provider, cache, 15*time.Minute, &recordingReporter{}).
				Execute(context.Background(), RefreshPricesInput{Force: tt.force})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if provider.calls != tt.wantCalls {
				t.Errorf("expected %d provider calls, got %d", tt.wantCalls, provider.calls)
			}
			if out.FromCache != tt.wantFromCache {
				t.Errorf("expected FromCache=%v, got %v", tt.wantFromCache, out.FromCache)
			}
			if cache.sets != tt.wantSets {
				t.Errorf("expected %d cache writes, got %d", tt.wantSets, cache.sets)
			}
			if !repo.Saved().GoldPrices.Gram24.Equal(decimal.NewFromInt(3000)) {
				t.Errorf("expected stored gram24 3000, got %s", repo.Saved().GoldPrices.Gram24)
			}
		})
	}
}

func TestRefreshPricesWithoutCache(t *testing.T) {
	store, _ := ledgertest.NewStore(t, entity.NewLedgerState("2025-03"))
	provider := &stubProvider{prices: samplePrices()}

	out, err := NewRefreshPricesUseCase(store, provider, nil, time.Minute, &recordingReporter{}).
		Execute(context.Background(), RefreshPricesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FromCache || provider.calls != 1 {
		t.Errorf("expected a provider fetch, got calls=%d fromCache=%v", provider.calls, out.FromCache)
	}
}

func TestRefreshPricesFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReport bool
	}{
		{
			name:       "unconfigured provider is not reported",
			err:        domainerror.NewGoldError(domainerror.ErrCodeGoldProviderNotConfigured, "no source", domainerror.ErrGoldProviderNotConfigured),
			wantReport: false,
		},
		{
			name:       "unavailable provider is reported",
			err:        domainerror.NewGoldError(domainerror.ErrCodeGoldPriceUnavailable, "down", domainerror.ErrGoldPriceUnavailable),
			wantReport: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-03"))
			reporter := &recordingReporter{}

			_, err := NewRefreshPricesUseCase(store, &stubProvider{err: tt.err}, nil, time.Minute, reporter).
				Execute(context.Background(), RefreshPricesInput{})

			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if got := len(reporter.errs) > 0; got != tt.wantReport {
				t.Errorf("expected reported=%v, got %v", tt.wantReport, got)
			}
			if repo.Saves() != 0 {
				t.Errorf("expected no save, got %d", repo.Saves())
			}
		})
	}
}
