// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

const insertBatchSize = 200

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Load reads the whole ledger state. Collections keep their insertion order.
func (r *snapshotRepository) Load(ctx context.Context) (*entity.LedgerState, error) {
	var meta model.LedgerMetaModel
	result := r.db.WithContext(ctx).Where("id = ?", model.LedgerMetaID).First(&meta)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}

	state := entity.NewLedgerState("")
	meta.ApplyTo(&state)

	var fixedModels []model.FixedExpenseModel
	if err := r.db.WithContext(ctx).Order("position").Find(&fixedModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}
	for i := range fixedModels {
		state.FixedExpenses = append(state.FixedExpenses, fixedModels[i].ToEntity())
	}

	var dailyModels []model.DailyExpenseModel
	if err := r.db.WithContext(ctx).Order("position").Find(&dailyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily expenses: %w", err)
	}
	for i := range dailyModels {
		state.DailyExpenses = append(state.DailyExpenses, dailyModels[i].ToEntity())
	}

	var debtModels []model.CCDebtModel
	if err := r.db.WithContext(ctx).Order("position").Find(&debtModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load card entries: %w", err)
	}
	for i := range debtModels {
		state.CCDebts = append(state.CCDebts, debtModels[i].ToEntity())
	}

	var planModels []model.InstallmentModel
	if err := r.db.WithContext(ctx).Order("position").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load installment plans: %w", err)
	}
	for i := range planModels {
		state.Installments = append(state.Installments, planModels[i].ToEntity())
	}

	var historyModels []model.PeriodHistoryModel
	if err := r.db.WithContext(ctx).Order("period").Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load period history: %w", err)
	}
	for i := range historyModels {
		state.History = append(state.History, historyModels[i].ToEntity())
	}

	return &state, nil
}

// Save replaces the stored state in a single transaction, so a failed write
// leaves the previous snapshot intact.
func (r *snapshotRepository) Save(ctx context.Context, state entity.LedgerState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.LedgerMetaFromEntity(&state)).Error; err != nil {
			return fmt.Errorf("failed to save ledger meta: %w", err)
		}

		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range model.AllModels()[1:] {
			if err := all.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", m, err)
			}
		}

		fixedModels := make([]*model.FixedExpenseModel, len(state.FixedExpenses))
		for i, f := range state.FixedExpenses {
			fixedModels[i] = model.FixedExpenseFromEntity(f, i)
		}
		if err := createAll(tx, fixedModels); err != nil {
			return fmt.Errorf("failed to save fixed expenses: %w", err)
		}

		dailyModels := make([]*model.DailyExpenseModel, len(state.DailyExpenses))
		for i, d := range state.DailyExpenses {
			dailyModels[i] = model.DailyExpenseFromEntity(d, i)
		}
		if err := createAll(tx, dailyModels); err != nil {
			return fmt.Errorf("failed to save daily expenses: %w", err)
		}

		debtModels := make([]*model.CCDebtModel, len(state.CCDebts))
		for i, c := range state.CCDebts {
			debtModels[i] = model.CCDebtFromEntity(c, i)
		}
		if err := createAll(tx, debtModels); err != nil {
			return fmt.Errorf("failed to save card entries: %w", err)
		}

		planModels := make([]*model.InstallmentModel, len(state.Installments))
		for i, p := range state.Installments {
			planModels[i] = model.InstallmentFromEntity(p, i)
		}
		if err := createAll(tx, planModels); err != nil {
			return fmt.Errorf("failed to save installment plans: %w", err)
		}

		historyModels := make([]*model.PeriodHistoryModel, len(state.History))
		for i, h := range state.History {
			historyModels[i] = model.PeriodHistoryFromEntity(h)
		}
		if err := createAll(tx, historyModels); err != nil {
			return fmt.Errorf("failed to save period history: %w", err)
		}

		return nil
	})
}

func createAll[T any](tx *gorm.DB, rows []*T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, insertBatchSize).Error
}
