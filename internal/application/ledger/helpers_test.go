package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// memoryRepository is an in-memory SnapshotRepository used by the tests.
type memoryRepository struct {
	mu      sync.Mutex
	state   *entity.LedgerState
	saves   int
	failErr error
}

func (r *memoryRepository) Load(_ context.Context) (*entity.LedgerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == nil {
		return nil, domainerror.ErrSnapshotNotFound
	}
	s := r.state.Clone()
	return &s, nil
}

func (r *memoryRepository) Save(_ context.Context, state entity.LedgerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	s := state.Clone()
	r.state = &s
	r.saves++
	return nil
}

var errDiskFull = errors.New("disk full")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestStore(period valueobject.Period) (*Store, *memoryRepository) {
	initial := entity.NewLedgerState(period)
	repo := &memoryRepository{state: &initial}
	store := NewStore(repo)
	if err := store.Load(context.Background(), mustStart(period)); err != nil {
		panic(err)
	}
	return store, repo
}
