package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// requiredCollections lists the collection keys every document must carry.
var requiredCollections = []string{"fixedExpenses", "dailyExpenses", "ccDebts", "installments"}

// ExportSnapshot converts the state into a version 3 document.
func ExportSnapshot(state entity.LedgerState) Document {
	doc := Document{
		Version:          CurrentVersion,
		CurrentPeriod:    string(state.CurrentPeriod),
		CashIncome:       num(state.CashIncome),
		CashRollover:     num(state.CashRollover),
		MealCardIncome:   num(state.MealCardIncome),
		MealCardRollover: num(state.MealCardRollover),
		FixedExpenses:    exportFixedExpenses(state.FixedExpenses),
		DailyExpenses:    make([]DailyExpenseDoc, 0, len(state.DailyExpenses)),
		CCDebts:          make([]CCDebtDoc, 0, len(state.CCDebts)),
		Installments:     make([]InstallmentDoc, 0, len(state.Installments)),
		History:          make([]HistoryDoc, 0, len(state.History)),
		Gold: GoldDoc{
			Gram22: num(state.Gold.Gram22),
			Gram24: num(state.Gold.Gram24),
			Resat:  num(state.Gold.Resat),
		},
		GoldPrices: GoldPricesDoc{
			Gram22: num(state.GoldPrices.Gram22),
			Gram24: num(state.GoldPrices.Gram24),
			Resat:  num(state.GoldPrices.Resat),
		},
	}
	if !state.GoldPrices.LastUpdated.IsZero() {
		doc.GoldPrices.LastUpdated = state.GoldPrices.LastUpdated.UTC().Format(time.RFC3339Nano)
	}

	for _, d := range state.DailyExpenses {
		doc.DailyExpenses = append(doc.DailyExpenses, DailyExpenseDoc{
			ID:          d.ID,
			Description: d.Description,
			Amount:      num(d.Amount),
			Date:        d.Date,
			FundType:    string(d.FundType),
		})
	}

	for _, c := range state.CCDebts {
		doc.CCDebts = append(doc.CCDebts, CCDebtDoc{
			ID:                c.ID,
			Description:       c.Description,
			Amount:            num(c.Amount),
			Period:            string(c.Period),
			InstallmentID:     c.InstallmentID,
			InstallmentNumber: c.InstallmentNumber,
			TotalInstallments: c.TotalInstallments,
		})
	}

	for _, p := range state.Installments {
		monthly := num(p.MonthlyAmount())
		item := InstallmentDoc{
			ID:                p.ID,
			Description:       p.Description,
			TotalAmount:       num(p.TotalAmount),
			TotalInstallments: p.TotalInstallments,
			InstallmentsPaid:  p.InstallmentsPaid,
			MonthlyAmount:     &monthly,
		}
		if !p.CreatedAt.IsZero() {
			item.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339Nano)
		}
		doc.Installments = append(doc.Installments, item)
	}

	for _, h := range state.History {
		doc.History = append(doc.History, HistoryDoc{
			Period:             string(h.Period),
			CashIncome:         num(h.CashIncome),
			CashRollover:       num(h.CashRollover),
			MealCardIncome:     num(h.MealCardIncome),
			MealCardRollover:   num(h.MealCardRollover),
			TotalCashSpend:     num(h.TotalCashSpend),
			TotalMealCardSpend: num(h.TotalMealCardSpend),
			TotalFixedPaid:     num(h.TotalFixedPaid),
			TotalCCBalance:     num(h.TotalCCBalance),
			ClosingCash:        num(h.ClosingCash),
			ClosingMealCard:    num(h.ClosingMealCard),
			FixedExpenses:      exportFixedExpenses(h.FixedExpenses),
		})
	}

	return doc
}

// MarshalSnapshot exports the state as indented JSON.
func MarshalSnapshot(state entity.LedgerState) ([]byte, error) {
	data, err := json.MarshalIndent(ExportSnapshot(state), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// ImportSnapshot validates a JSON document and converts it into a ledger
// state. The version must be supported and every collection key present.
// Unknown keys are ignored. On failure a *domainerror.ValidationError lists
// every missing or invalid field. fallback is used as the current period
// when the document does not name one.
func ImportSnapshot(data []byte, fallback valueobject.Period) (entity.LedgerState, error) {
	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidSnapshot))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		verr.Add("document", "must be a JSON object")
		return entity.LedgerState{}, verr
	}

	version, ok := decodeVersion(raw, verr)
	if !ok {
		return entity.LedgerState{}, verr
	}

	for legacy, current := range legacyFields {
		if _, exists := raw[current]; exists {
			continue
		}
		if value, exists := raw[legacy]; exists {
			raw[current] = value
		}
	}

	required := requiredCollections
	if version == 1 {
		// Version 1 predates installment plans.
		required = requiredCollections[:3]
	}
	for _, key := range required {
		value, exists := raw[key]
		if !exists || string(value) == "null" {
			verr.Add(key, "missing")
		}
	}

	var doc Document
	decodeField(raw, "currentPeriod", &doc.CurrentPeriod, verr)
	decodeField(raw, "cashIncome", &doc.CashIncome, verr)
	decodeField(raw, "cashRollover", &doc.CashRollover, verr)
	decodeField(raw, "mealCardIncome", &doc.MealCardIncome, verr)
	decodeField(raw, "mealCardRollover", &doc.MealCardRollover, verr)
	decodeField(raw, "fixedExpenses", &doc.FixedExpenses, verr)
	decodeField(raw, "dailyExpenses", &doc.DailyExpenses, verr)
	decodeField(raw, "ccDebts", &doc.CCDebts, verr)
	decodeField(raw, "installments", &doc.Installments, verr)
	decodeField(raw, "history", &doc.History, verr)
	decodeField(raw, "gold", &doc.Gold, verr)
	decodeField(raw, "goldPrices", &doc.GoldPrices, verr)

	if verr.HasErrors() {
		return entity.LedgerState{}, verr
	}

	doc.Version = version
	state := toState(doc, fallback, verr)
	if verr.HasErrors() {
		return entity.LedgerState{}, verr
	}

	if err := ledger.ValidateState(state); err != nil {
		var stateErr *domainerror.ValidationError
		if errors.As(err, &stateErr) {
			verr.Fields = append(verr.Fields, stateErr.Fields...)
		} else {
			verr.Add("installments", err.Error())
		}
		return entity.LedgerState{}, verr
	}

	return state, nil
}

func decodeVersion(raw map[string]json.RawMessage, verr *domainerror.ValidationError) (int, bool) {
	value, exists := raw["version"]
	if !exists {
		verr.Add("version", "missing")
		return 0, false
	}

	var version int
	if err := json.Unmarshal(value, &version); err != nil {
		verr.Add("version", "must be an integer")
		return 0, false
	}
	if !supportedVersions[version] {
		verr.Add("version", "unsupported version "+strconv.Itoa(version))
		return 0, false
	}
	return version, true
}

func decodeField(raw map[string]json.RawMessage, key string, target interface{}, verr *domainerror.ValidationError) {
	value, exists := raw[key]
	if !exists || string(value) == "null" {
		return
	}
	if err := json.Unmarshal(value, target); err != nil {
		reason := "invalid value"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			key = key + "." + typeErr.Field
			reason = "expected " + typeErr.Type.String()
		}
		verr.Add(key, reason)
	}
}

func toState(doc Document, fallback valueobject.Period, verr *domainerror.ValidationError) entity.LedgerState {
	period := fallback
	if doc.CurrentPeriod != "" {
		p, err := valueobject.ParsePeriod(doc.CurrentPeriod)
		if err != nil {
			verr.Add("currentPeriod", err.Error())
		}
		period = p
	}

	state := entity.NewLedgerState(period)
	state.CashIncome = doc.CashIncome.Decimal
	state.CashRollover = doc.CashRollover.Decimal
	state.MealCardIncome = doc.MealCardIncome.Decimal
	state.MealCardRollover = doc.MealCardRollover.Decimal
	state.FixedExpenses = importFixedExpenses(doc.FixedExpenses)

	for i, d := range doc.DailyExpenses {
		field := fmt.Sprintf("dailyExpenses[%d]", i)
		label := d.FundType
		if label == "" {
			label = d.LegacyType
		}
		fundType, err := valueobject.ParseFundType(label)
		if err != nil {
			verr.Add(field+".fundType", err.Error())
		}
		date, err := valueobject.ParseDate(d.Date)
		if err != nil {
			verr.Add(field+".date", err.Error())
		}
		state.DailyExpenses = append(state.DailyExpenses, entity.DailyExpense{
			ID:          idOrNew(d.ID),
			Description: d.Description,
			Amount:      d.Amount.Decimal,
			Date:        date,
			FundType:    fundType,
		})
	}

	for i, c := range doc.CCDebts {
		entryPeriod := period
		if c.Period != "" {
			p, err := valueobject.ParsePeriod(c.Period)
			if err != nil {
				verr.Add(fmt.Sprintf("ccDebts[%d].period", i), err.Error())
			}
			entryPeriod = p
		}
		number := c.InstallmentNumber
		if number == 0 {
			number = c.CurrentInstallment
		}
		state.CCDebts = append(state.CCDebts, entity.CreditCardDebt{
			ID:                idOrNew(c.ID),
			Description:       c.Description,
			Amount:            c.Amount.Decimal,
			Period:            entryPeriod,
			InstallmentID:     c.InstallmentID,
			InstallmentNumber: number,
			TotalInstallments: c.TotalInstallments,
		})
	}

	for i, p := range doc.Installments {
		field := fmt.Sprintf("installments[%d]", i)
		total := p.TotalInstallments
		paid := p.InstallmentsPaid
		if total == 0 && p.InstallmentCount > 0 {
			total = p.InstallmentCount
			if p.RemainingInstallments != nil {
				paid = total - *p.RemainingInstallments
			}
		}

		created, err := parseTimestamp(p.CreatedAt)
		if err != nil {
			verr.Add(field+".createdAt", err.Error())
		}
		if p.CreatedAt == "" {
			if created, err = parseTimestamp(p.StartDate); err != nil {
				verr.Add(field+".startDate", err.Error())
			}
		}

		state.Installments = append(state.Installments, entity.InstallmentPlan{
			ID:                idOrNew(p.ID),
			Description:       p.Description,
			TotalAmount:       p.TotalAmount.Decimal,
			TotalInstallments: total,
			InstallmentsPaid:  paid,
			CreatedAt:         created,
		})
	}

	for i, h := range doc.History {
		p, err := valueobject.ParsePeriod(h.Period)
		if err != nil {
			verr.Add(fmt.Sprintf("history[%d].period", i), err.Error())
		}
		state.History = append(state.History, entity.PeriodHistory{
			Period:             p,
			CashIncome:         h.CashIncome.Decimal,
			CashRollover:       h.CashRollover.Decimal,
			MealCardIncome:     h.MealCardIncome.Decimal,
			MealCardRollover:   h.MealCardRollover.Decimal,
			TotalCashSpend:     h.TotalCashSpend.Decimal,
			TotalMealCardSpend: h.TotalMealCardSpend.Decimal,
			TotalFixedPaid:     h.TotalFixedPaid.Decimal,
			TotalCCBalance:     h.TotalCCBalance.Decimal,
			ClosingCash:        h.ClosingCash.Decimal,
			ClosingMealCard:    h.ClosingMealCard.Decimal,
			FixedExpenses:      importFixedExpenses(h.FixedExpenses),
		})
	}
	sort.SliceStable(state.History, func(i, j int) bool {
		return state.History[i].Period < state.History[j].Period
	})

	state.Gold = entity.GoldHoldings{
		Gram22: doc.Gold.Gram22.Decimal,
		Gram24: doc.Gold.Gram24.Decimal,
		Resat:  doc.Gold.Resat.Decimal,
	}
	lastUpdated, err := parseTimestamp(doc.GoldPrices.LastUpdated)
	if err != nil {
		verr.Add("goldPrices.lastUpdated", err.Error())
	}
	state.GoldPrices = entity.GoldPrices{
		Gram22:      doc.GoldPrices.Gram22.Decimal,
		Gram24:      doc.GoldPrices.Gram24.Decimal,
		Resat:       doc.GoldPrices.Resat.Decimal,
		LastUpdated: lastUpdated,
	}

	return state
}

func exportFixedExpenses(items []entity.FixedExpense) []FixedExpenseDoc {
	docs := make([]FixedExpenseDoc, 0, len(items))
	for _, f := range items {
		docs = append(docs, FixedExpenseDoc{
			ID:          f.ID,
			Title:       f.Title,
			Amount:      num(f.Amount),
			IsPaid:      f.IsPaid,
			CarriedFrom: string(f.CarriedFrom),
		})
	}
	return docs
}

func importFixedExpenses(docs []FixedExpenseDoc) []entity.FixedExpense {
	items := make([]entity.FixedExpense, 0, len(docs))
	for _, f := range docs {
		items = append(items, entity.FixedExpense{
			ID:          idOrNew(f.ID),
			Title:       f.Title,
			Amount:      f.Amount.Decimal,
			IsPaid:      f.IsPaid,
			CarriedFrom: valueobject.Period(f.CarriedFrom),
		})
	}
	return items
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// parseTimestamp parses an optional RFC 3339 timestamp. An empty value
// yields the zero time.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected an RFC 3339 timestamp, got %q", raw)
	}
	return t.UTC(), nil
}
