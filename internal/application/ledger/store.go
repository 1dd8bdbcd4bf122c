// Package ledger owns the canonical ledger state together with the
// installment scheduler, the period rollover engine and the derived views.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// Store is the single owner of the ledger state.
// Every mutation runs to completion under the store lock and is persisted
// as a full snapshot before it becomes visible to readers.
type Store struct {
	mu    sync.Mutex
	state entity.LedgerState
	repo  adapter.SnapshotRepository
}

// NewStore creates a store backed by the given snapshot repository.
// The store is empty until Load is called.
func NewStore(repo adapter.SnapshotRepository) *Store {
	return &Store{
		repo:  repo,
		state: entity.NewLedgerState(""),
	}
}

// Load initializes the store from the persisted snapshot. When no snapshot
// exists a new ledger is opened at the period containing now and saved.
func (s *Store) Load(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to load ledger snapshot: %w", err)
		}

		initial := entity.NewLedgerState(valueobject.PeriodOf(now))
		if err := s.repo.Save(ctx, initial); err != nil {
			return fmt.Errorf("failed to save initial ledger snapshot: %w", err)
		}
		s.state = initial
		slog.Info("Initialized new ledger", "period", initial.CurrentPeriod)
		return nil
	}

	if err := ValidateState(*persisted); err != nil {
		return fmt.Errorf("persisted ledger snapshot is invalid: %w", err)
	}

	s.state = persisted.Clone()
	slog.Info("Ledger loaded",
		"period", s.state.CurrentPeriod,
		"fixed_expenses", len(s.state.FixedExpenses),
		"daily_expenses", len(s.state.DailyExpenses),
		"cc_debts", len(s.state.CCDebts),
		"installments", len(s.state.Installments),
	)
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() entity.LedgerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the state. If fn fails, the result does
// not validate or cannot be persisted, the current state is left untouched.
func (s *Store) Update(ctx context.Context, fn func(state *entity.LedgerState) error) (entity.LedgerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return entity.LedgerState{}, err
	}

	if err := ValidateState(next); err != nil {
		return entity.LedgerState{}, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return entity.LedgerState{}, fmt.Errorf("failed to persist ledger snapshot: %w", err)
	}

	s.state = next
	return next.Clone(), nil
}

// ReplaceAll atomically replaces the whole state.
func (s *Store) ReplaceAll(ctx context.Context, state entity.LedgerState) error {
	_, err := s.Update(ctx, func(current *entity.LedgerState) error {
		*current = state.Clone()
		return nil
	})
	return err
}
