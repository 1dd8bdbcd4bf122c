package fixedexpense

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/ledger/ledgertest"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

func TestCreateFixedExpense(t *testing.T) {
	store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-01"))
	uc := NewCreateFixedExpenseUseCase(store)

	out, err := uc.Execute(context.Background(), CreateFixedExpenseInput{
		Title:  "  Kira ",
		Amount: decimal.RequireFromString("15000.005"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.FixedExpense.Title != "Kira" {
		t.Errorf("expected trimmed title, got %q", out.FixedExpense.Title)
	}
	if !out.FixedExpense.Amount.Equal(decimal.RequireFromString("15000.01")) {
		t.Errorf("expected amount rounded to 15000.01, got %s", out.FixedExpense.Amount)
	}
	if got := repo.Saved().FixedExpenses; len(got) != 1 || got[0].ID != out.FixedExpense.ID {
		t.Errorf("expected the expense to be persisted, got %+v", got)
	}
}

func TestCreateFixedExpenseValidation(t *testing.T) {
	tests := []struct {
		name   string
		input  CreateFixedExpenseInput
		fields []string
	}{
		{
			name:   "empty title",
			input:  CreateFixedExpenseInput{Title: " ", Amount: decimal.NewFromInt(10)},
			fields: []string{"title"},
		},
		{
			name:   "negative amount",
			input:  CreateFixedExpenseInput{Title: "Kira", Amount: decimal.NewFromInt(-10)},
			fields: []string{"amount"},
		},
		{
			name:   "both",
			input:  CreateFixedExpenseInput{Amount: decimal.NewFromInt(-1)},
			fields: []string{"title", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-01"))

			_, err := NewCreateFixedExpenseUseCase(store).Execute(context.Background(), tt.input)

			var verr *domainerror.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Errorf("expected fields %v, got %v", tt.fields, verr.FieldNames())
			}
			if repo.Saves() != 0 {
				t.Errorf("expected no save, got %d", repo.Saves())
			}
		})
	}
}

func TestUpdateToggleDeleteFixedExpense(t *testing.T) {
	initial := entity.NewLedgerState("2025-01")
	initial.FixedExpenses = append(initial.FixedExpenses,
		entity.FixedExpense{ID: "rent", Title: "Kira", Amount: decimal.NewFromInt(15000)},
		entity.FixedExpense{ID: "fee", Title: "Aidat", Amount: decimal.NewFromInt(800)},
	)
	store, _ := ledgertest.NewStore(t, initial)
	ctx := context.Background()

	amount := decimal.NewFromInt(16000)
	updated, err := NewUpdateFixedExpenseUseCase(store).Execute(ctx, UpdateFixedExpenseInput{ID: "rent", Amount: &amount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FixedExpense.Title != "Kira" || !updated.FixedExpense.Amount.Equal(amount) {
		t.Errorf("unexpected update result: %+v", updated.FixedExpense)
	}

	toggled, err := NewToggleFixedExpenseUseCase(store).Execute(ctx, ToggleFixedExpenseInput{ID: "rent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.FixedExpense.IsPaid {
		t.Error("expected expense to be paid after toggle")
	}

	if err := NewDeleteFixedExpenseUseCase(store).Execute(ctx, DeleteFixedExpenseInput{ID: "fee"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := NewListFixedExpensesUseCase(store).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.FixedExpenses) != 1 {
		t.Fatalf("expected 1 fixed expense, got %d", len(list.FixedExpenses))
	}
	if !list.TotalPaid.Equal(amount) || !list.TotalUnpaid.IsZero() {
		t.Errorf("expected paid %s and nothing unpaid, got %s / %s", amount, list.TotalPaid, list.TotalUnpaid)
	}
}

func TestUnknownFixedExpense(t *testing.T) {
	store, repo := ledgertest.NewStore(t, entity.NewLedgerState("2025-01"))
	ctx := context.Background()

	errs := []error{
		NewDeleteFixedExpenseUseCase(store).Execute(ctx, DeleteFixedExpenseInput{ID: "missing"}),
	}
	_, err := NewToggleFixedExpenseUseCase(store).Execute(ctx, ToggleFixedExpenseInput{ID: "missing"})
	errs = append(errs, err)
	_, err = NewUpdateFixedExpenseUseCase(store).Execute(ctx, UpdateFixedExpenseInput{ID: "missing"})
	errs = append(errs, err)

	for _, err := range errs {
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeEntryNotFound {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeEntryNotFound, err)
		}
	}
	if repo.Saves() != 0 {
		t.Errorf("expected no save, got %d", repo.Saves())
	}
}
