package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleState()

	data, err := MarshalSnapshot(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	imported, err := ImportSnapshot(data, "2030-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := MarshalSnapshot(imported)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("expected identical export after round trip\nfirst:  %s\nsecond: %s", data, again)
	}

	if imported.CurrentPeriod != original.CurrentPeriod {
		t.Errorf("expected period %s, got %s", original.CurrentPeriod, imported.CurrentPeriod)
	}
	if !imported.CashRollover.Equal(dec("1234.56")) {
		t.Errorf("expected cash rollover 1234.56, got %s", imported.CashRollover)
	}
	if imported.FixedExpenses[1].CarriedFrom != "2025-02" {
		t.Errorf("expected carried marker to survive, got %q", imported.FixedExpenses[1].CarriedFrom)
	}
	if imported.CCDebts[1].InstallmentNumber != 2 {
		t.Errorf("expected installment number 2, got %d", imported.CCDebts[1].InstallmentNumber)
	}
}

func TestExportSnapshotWritesEmptyCollections(t *testing.T) {
	data, err := MarshalSnapshot(sampleStateEmpty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range requiredCollections {
		if string(raw[key]) != "[]" {
			t.Errorf("expected %s to be an empty array, got %s", key, raw[key])
		}
	}
	if string(raw["version"]) != "3" {
		t.Errorf("expected version 3, got %s", raw["version"])
	}
}

func TestImportSnapshotRejectsMissingCollection(t *testing.T) {
	doc := `{
		"version": 3,
		"currentPeriod": "2025-01",
		"cashIncome": 10000,
		"fixedExpenses": [],
		"ccDebts": [],
		"installments": []
	}`

	_, err := ImportSnapshot([]byte(doc), "2025-01")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var verr *domainerror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !errors.Is(err, domainerror.ErrValidation) {
		t.Error("expected error to wrap ErrValidation")
	}
	if names := verr.FieldNames(); len(names) != 1 || names[0] != "dailyExpenses" {
		t.Errorf("expected only dailyExpenses to be reported, got %v", names)
	}
}

func TestImportSnapshotErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "not an object",
			doc:   `[1, 2, 3]`,
			field: "document",
		},
		{
			name:  "malformed json",
			doc:   `{"version": 3,`,
			field: "document",
		},
		{
			name:  "missing version",
			doc:   `{"fixedExpenses": [], "dailyExpenses": [], "ccDebts": [], "installments": []}`,
			field: "version",
		},
		{
			name:  "unsupported version",
			doc:   `{"version": 9, "fixedExpenses": [], "dailyExpenses": [], "ccDebts": [], "installments": []}`,
			field: "version",
		},
		{
			name:  "null collection",
			doc:   `{"version": 3, "fixedExpenses": null, "dailyExpenses": [], "ccDebts": [], "installments": []}`,
			field: "fixedExpenses",
		},
		{
			name:  "wrong field type",
			doc:   `{"version": 3, "fixedExpenses": [{"id": "a", "title": "Kira", "amount": 10, "isPaid": "yes"}], "dailyExpenses": [], "ccDebts": [], "installments": []}`,
			field: "fixedExpenses.isPaid",
		},
		{
			name:  "unknown fund type",
			doc:   `{"version": 3, "fixedExpenses": [], "dailyExpenses": [{"id": "a", "description": "x", "amount": -5, "date": "2025-01-02", "fundType": "CRYPTO"}], "ccDebts": [], "installments": []}`,
			field: "dailyExpenses[0].fundType",
		},
		{
			name:  "bad current period",
			doc:   `{"version": 3, "currentPeriod": "2025-13", "fixedExpenses": [], "dailyExpenses": [], "ccDebts": [], "installments": []}`,
			field: "currentPeriod",
		},
		{
			name:  "malformed gold price timestamp",
			doc:   `{"version": 3, "fixedExpenses": [], "dailyExpenses": [], "ccDebts": [], "installments": [], "goldPrices": {"g22": 2450, "lastUpdated": "dün"}}`,
			field: "goldPrices.lastUpdated",
		},
		{
			name:  "malformed plan timestamp",
			doc:   `{"version": 3, "fixedExpenses": [], "dailyExpenses": [], "ccDebts": [], "installments": [{"id": "p", "description": "TV", "totalAmount": 300, "totalInstallments": 3, "createdAt": "2025-13-01"}]}`,
			field: "installments[0].createdAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportSnapshot([]byte(tt.doc), "2025-01")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var verr *domainerror.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Code != string(domainerror.ErrCodeInvalidSnapshot) {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidSnapshot, verr.Code)
			}

			found := false
			for _, name := range verr.FieldNames() {
				if strings.HasPrefix(name, tt.field) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %s in %v", tt.field, verr.FieldNames())
			}
		})
	}
}

func TestImportSnapshotRejectsInconsistentPlan(t *testing.T) {
	doc := `{
		"version": 3,
		"currentPeriod": "2025-01",
		"fixedExpenses": [],
		"dailyExpenses": [],
		"ccDebts": [],
		"installments": [{"id": "p1", "description": "TV", "totalAmount": 1200, "totalInstallments": 6, "installmentsPaid": 7}]
	}`

	_, err := ImportSnapshot([]byte(doc), "2025-01")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var verr *domainerror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestImportSnapshotLegacyDocuments(t *testing.T) {
	t.Run("version 1 without installments", func(t *testing.T) {
		doc := `{
			"version": 1,
			"income": 9999,
			"rollover": 0,
			"fixedExpenses": [{"id": "f1", "title": "Kira", "amount": 5000, "isPaid": false}],
			"dailyExpenses": [{"id": "d1", "description": "Market", "amount": -250, "date": "2024-11-03", "type": "NAKIT"}],
			"ccDebts": [{"id": "c1", "description": "Benzin", "amount": -600}]
		}`

		state, err := ImportSnapshot([]byte(doc), "2024-11")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.CashIncome.Equal(dec("9999")) {
			t.Errorf("expected cash income 9999, got %s", state.CashIncome)
		}
		if state.CurrentPeriod != "2024-11" {
			t.Errorf("expected fallback period 2024-11, got %s", state.CurrentPeriod)
		}
		if state.DailyExpenses[0].FundType != valueobject.FundTypeCash {
			t.Errorf("expected CASH, got %s", state.DailyExpenses[0].FundType)
		}
		if state.CCDebts[0].Period != "2024-11" {
			t.Errorf("expected card entry to default to the current period, got %s", state.CCDebts[0].Period)
		}
		if len(state.Installments) != 0 {
			t.Errorf("expected no installments, got %d", len(state.Installments))
		}
	})

	t.Run("version 2 with meal card and legacy plan keys", func(t *testing.T) {
		doc := `{
			"version": 2,
			"currentMonth": "2024-12",
			"income": 30000,
			"ykIncome": 3000,
			"ykRollover": 120.5,
			"fixedExpenses": [],
			"dailyExpenses": [{"id": "d1", "description": "Öğle", "amount": -150, "date": "2024-12-02T12:30:00.000Z", "type": "YK"}],
			"ccDebts": [{"id": "c1", "description": "TV (2/6)", "amount": -200, "period": "2024-12", "installmentId": "p1", "currentInstallment": 2, "totalInstallments": 6}],
			"installments": [{"id": "p1", "description": "TV", "totalAmount": 1200, "installmentCount": 6, "remainingInstallments": 5, "startDate": "2024-11-01T00:00:00Z"}],
			"theme": "dark"
		}`

		state, err := ImportSnapshot([]byte(doc), "2030-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.CurrentPeriod != "2024-12" {
			t.Errorf("expected period 2024-12, got %s", state.CurrentPeriod)
		}
		if !state.MealCardRollover.Equal(dec("120.5")) {
			t.Errorf("expected meal card rollover 120.5, got %s", state.MealCardRollover)
		}
		daily := state.DailyExpenses[0]
		if daily.FundType != valueobject.FundTypeMealCard || daily.Date != "2024-12-02" {
			t.Errorf("expected MEAL_CARD on 2024-12-02, got %s on %s", daily.FundType, daily.Date)
		}
		plan := state.Installments[0]
		if plan.TotalInstallments != 6 || plan.InstallmentsPaid != 1 {
			t.Errorf("expected 1 of 6 paid, got %d of %d", plan.InstallmentsPaid, plan.TotalInstallments)
		}
		if plan.CreatedAt.IsZero() {
			t.Error("expected start date to become the creation time")
		}
		if state.CCDebts[0].InstallmentNumber != 2 {
			t.Errorf("expected installment number 2, got %d", state.CCDebts[0].InstallmentNumber)
		}
	})
}

func TestImportSnapshotAssignsMissingIDs(t *testing.T) {
	doc := `{
		"version": 3,
		"currentPeriod": "2025-01",
		"fixedExpenses": [{"title": "Aidat", "amount": 800, "isPaid": false}],
		"dailyExpenses": [],
		"ccDebts": [],
		"installments": []
	}`

	state, err := ImportSnapshot([]byte(doc), "2025-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.FixedExpenses[0].ID == "" {
		t.Error("expected an id to be assigned")
	}
}
