// Package ledgertest provides an in-memory snapshot repository and store
// for tests of code built on the ledger.
package ledgertest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// MemoryRepository is an adapter.SnapshotRepository kept in memory.
type MemoryRepository struct {
	mu      sync.Mutex
	state   *entity.LedgerState
	saves   int
	failErr error
}

// Load returns a copy of the saved state.
func (r *MemoryRepository) Load(_ context.Context) (*entity.LedgerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == nil {
		return nil, domainerror.ErrSnapshotNotFound
	}
	s := r.state.Clone()
	return &s, nil
}

// Save stores a copy of state, or fails with the error set by FailWith.
func (r *MemoryRepository) Save(_ context.Context, state entity.LedgerState) error {
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

// FailWith makes every following Save return err. A nil err clears it.
func (r *MemoryRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// Saves returns the number of successful saves.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// Saved returns a copy of the last saved state.
func (r *MemoryRepository) Saved() entity.LedgerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == nil {
		return entity.LedgerState{}
	}
	return r.state.Clone()
}

// NewStore returns a store loaded from initial.
func NewStore(t testing.TB, initial entity.LedgerState) (*ledger.Store, *MemoryRepository) {
	t.Helper()

	s := initial.Clone()
	repo := &MemoryRepository{state: &s}
	store := ledger.NewStore(repo)

	start, err := initial.CurrentPeriod.Start()
	if err != nil {
		t.Fatalf("invalid initial period %q: %v", initial.CurrentPeriod, err)
	}
	if err := store.Load(context.Background(), start.Add(24*time.Hour)); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store, repo
}
