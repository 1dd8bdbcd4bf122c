package period

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/application/ledger/ledgertest"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

type recordingReporter struct {
	mu   sync.Mutex
	errs []error
	tags []map[string]string
}

func (r *recordingReporter) CaptureError(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.tags = append(r.tags, tags)
}

func TestStartNewPeriod(t *testing.T) {
	initial := entity.NewLedgerState("2025-01")
	initial.CashIncome = decimal.NewFromInt(10000)
	store, repo := ledgertest.NewStore(t, initial)
	reporter := &recordingReporter{}

	out, err := NewStartNewPeriodUseCase(ledger.NewRolloverEngine(store), reporter).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Result.NewPeriod != "2025-02" {
		t.Errorf("expected new period 2025-02, got %s", out.Result.NewPeriod)
	}
	if !repo.Saved().CashRollover.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected rollover 10000, got %s", repo.Saved().CashRollover)
	}
	if len(reporter.errs) != 0 {
		t.Errorf("expected nothing reported, got %v", reporter.errs)
	}
}

func TestStartNewPeriodReportsPersistenceFailure(t *testing.T) {
	store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-01"))
	repo.FailWith(errors.New("disk full"))
	reporter := &recordingReporter{}

	_, err := NewStartNewPeriodUseCase(ledger.NewRolloverEngine(store), reporter).Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	if len(reporter.errs) != 1 || reporter.tags[0]["operation"] != "start_new_period" {
		t.Errorf("expected one start_new_period report, got %v", reporter.tags)
	}
	if store.Snapshot().CurrentPeriod != "2025-01" {
		t.Error("expected the period to stay unchanged")
	}
}

func TestCatchUpPeriods(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantRuns   int
		wantPeriod string
	}{
		{
			name:       "same month is a no-op",
			now:        time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			wantRuns:   0,
			wantPeriod: "2025-01",
		},
		{
			name:       "one rollover per elapsed month",
			now:        time.Date(2025, time.April, 1, 0, 5, 0, 0, time.UTC),
			wantRuns:   3,
			wantPeriod: "2025-04",
		},
		{
			name:       "crosses the year boundary",
			now:        time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
			wantRuns:   13,
			wantPeriod: "2026-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := entity.NewLedgerState("2025-01")
			initial.CashIncome = decimal.NewFromInt(1000)
			store, _ := ledgertest.NewStore(t, initial)
			uc := NewCatchUpPeriodsUseCase(ledger.NewRolloverEngine(store), &recordingReporter{})

			out, err := uc.Execute(context.Background(), CatchUpPeriodsInput{Now: tt.now})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(out.Results) != tt.wantRuns {
				t.Errorf("expected %d rollovers, got %d", tt.wantRuns, len(out.Results))
			}
			if got := store.Snapshot().CurrentPeriod; string(got) != tt.wantPeriod {
				t.Errorf("expected period %s, got %s", tt.wantPeriod, got)
			}
		})
	}
}

func TestListHistoryNewestFirst(t *testing.T) {
	store, _ := ledgertest.NewStore(t, entity.NewLedgerState("2025-01"))
	_, err := NewCatchUpPeriodsUseCase(ledger.NewRolloverEngine(store), &recordingReporter{}).Execute(
		context.Background(),
		CatchUpPeriodsInput{Now: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewListHistoryUseCase(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.History) != 3 {
		t.Fatalf("expected 3 archived periods, got %d", len(out.History))
	}
	if out.History[0].Period != "2025-03" || out.History[2].Period != "2025-01" {
		t.Errorf("expected newest first, got %s..%s", out.History[0].Period, out.History[2].Period)
	}
}
