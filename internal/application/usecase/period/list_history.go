package period

import (
	"context"
	"sort"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListHistoryOutput lists closed periods, most recent first.
type ListHistoryOutput struct {
	History []entity.PeriodHistory
}

// ListHistoryUseCase lists the archived periods.
type ListHistoryUseCase struct {
	store *ledger.Store
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(store *ledger.Store) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		store: store,
	}
}

// Execute returns the period history.
func (uc *ListHistoryUseCase) Execute(_ context.Context) (*ListHistoryOutput, error) {
	history := uc.store.Snapshot().History
	sort.Slice(history, func(i, j int) bool {
		return history[j].Period.Before(history[i].Period)
	})
	return &ListHistoryOutput{
		History: history,
	}, nil
}
