// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// SnapshotRepository defines the interface for ledger snapshot persistence.
type SnapshotRepository interface {
	// Load retrieves the last saved ledger state.
	// It returns domainerror.ErrSnapshotNotFound when nothing was saved yet.
	Load(ctx context.Context) (*entity.LedgerState, error)

	// Save replaces the persisted ledger with the given state in one transaction.
	Save(ctx context.Context, state entity.LedgerState) error
}
