package backup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

// CurrentSheetPrefix prefixes the name of the sheet holding the open period.
const CurrentSheetPrefix = "Mevcut - "

const (
	rowFixedExpense = "FixedExpense"
	rowDailyExpense = "DailyExpense"
	rowCCDebt       = "CCDebt"
	rowInstallment  = "Installment"

	paidYes = "Evet"
	paidNo  = "Hayır"
)

// Section labels of the general information rows.
const (
	sectionGeneral       = "GENEL BİLGİLER"
	sectionMonth         = "Ay"
	sectionCashIncome    = "Gelir (Nakit)"
	sectionCashRollover  = "Devreden (Nakit)"
	sectionMealIncome    = "Yemek Kartı Geliri"
	sectionMealRollover  = "Yemek Kartı Devreden"
	sectionGold22        = "Altın 22 Ayar (gr)"
	sectionGold24        = "Altın 24 Ayar (gr)"
	sectionResat         = "Reşat Altını (adet)"
	sectionPrice22       = "Fiyat 22 Ayar"
	sectionPrice24       = "Fiyat 24 Ayar"
	sectionPriceResat    = "Fiyat Reşat"
	sectionPriceUpdated  = "Fiyat Güncelleme"
	sectionCashSpend     = "Nakit Harcama"
	sectionMealSpend     = "Yemek Kartı Harcama"
	sectionFixedPaid     = "Ödenen Sabit Giderler"
	sectionCCBalance     = "Kredi Kartı Bakiyesi"
	sectionClosingCash   = "Kapanış (Nakit)"
	sectionClosingMeal   = "Kapanış (Yemek Kartı)"
	sectionFixedExpenses = "SABİT GİDERLER"
	sectionDailyExpenses = "GÜNLÜK HARCAMALAR"
	sectionCCDebts       = "KREDİ KARTI BORÇLARI"
	sectionInstallments  = "TAKSİTLER"
)

// workbookColumns is the header row of every sheet.
var workbookColumns = []string{
	"Section", "Value", "Type", "ID", "Title", "Description", "Date", "Amount",
	"IsPaid", "FundType", "Period", "InstallmentId", "InstallmentNumber",
	"TotalInstallments", "TotalAmount", "InstallmentsPaid", "CarriedFrom", "CreatedAt",
}

// sheetRow is one row keyed by column name.
type sheetRow map[string]interface{}

// ExportWorkbook renders the state as an xlsx workbook: one sheet for the
// open period followed by one sheet per archived period.
func ExportWorkbook(state entity.LedgerState) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	current := CurrentSheetPrefix + string(state.CurrentPeriod)
	if err := f.SetSheetName(f.GetSheetName(0), current); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := writeSheet(f, current, currentSheetRows(state)); err != nil {
		return nil, err
	}

	for _, h := range state.History {
		name := string(h.Period)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, historySheetRows(h)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func currentSheetRows(state entity.LedgerState) []sheetRow {
	rows := []sheetRow{
		{"Section": sectionGeneral},
		{"Section": sectionMonth, "Value": string(state.CurrentPeriod)},
		{"Section": sectionCashIncome, "Value": state.CashIncome},
		{"Section": sectionCashRollover, "Value": state.CashRollover},
		{"Section": sectionMealIncome, "Value": state.MealCardIncome},
		{"Section": sectionMealRollover, "Value": state.MealCardRollover},
		{"Section": sectionGold22, "Value": state.Gold.Gram22},
		{"Section": sectionGold24, "Value": state.Gold.Gram24},
		{"Section": sectionResat, "Value": state.Gold.Resat},
		{"Section": sectionPrice22, "Value": state.GoldPrices.Gram22},
		{"Section": sectionPrice24, "Value": state.GoldPrices.Gram24},
		{"Section": sectionPriceResat, "Value": state.GoldPrices.Resat},
	}
	if !state.GoldPrices.LastUpdated.IsZero() {
		rows = append(rows, sheetRow{"Section": sectionPriceUpdated, "Value": state.GoldPrices.LastUpdated.UTC().Format(time.RFC3339Nano)})
	}

	rows = append(rows, sheetRow{}, sheetRow{"Section": sectionFixedExpenses})
	rows = append(rows, fixedExpenseRows(state.FixedExpenses)...)

	rows = append(rows, sheetRow{}, sheetRow{"Section": sectionDailyExpenses})
	for _, d := range state.DailyExpenses {
		rows = append(rows, sheetRow{
			"Type":        rowDailyExpense,
			"ID":          d.ID,
			"Date":        d.Date,
			"Description": d.Description,
			"Amount":      d.Amount,
			"FundType":    string(d.FundType),
		})
	}

	rows = append(rows, sheetRow{}, sheetRow{"Section": sectionCCDebts})
	for _, c := range state.CCDebts {
		row := sheetRow{
			"Type":        rowCCDebt,
			"ID":          c.ID,
			"Description": c.Description,
			"Amount":      c.Amount,
			"Period":      string(c.Period),
		}
		if c.IsInstallment() {
			row["InstallmentId"] = c.InstallmentID
			row["InstallmentNumber"] = c.InstallmentNumber
			row["TotalInstallments"] = c.TotalInstallments
		}
		rows = append(rows, row)
	}

	rows = append(rows, sheetRow{}, sheetRow{"Section": sectionInstallments})
	for _, p := range state.Installments {
		row := sheetRow{
			"Type":              rowInstallment,
			"ID":                p.ID,
			"Description":       p.Description,
			"TotalAmount":       p.TotalAmount,
			"Amount":            p.MonthlyAmount(),
			"TotalInstallments": p.TotalInstallments,
			"InstallmentsPaid":  p.InstallmentsPaid,
		}
		if !p.CreatedAt.IsZero() {
			row["CreatedAt"] = p.CreatedAt.UTC().Format(time.RFC3339Nano)
		}
		rows = append(rows, row)
	}

	return rows
}

func historySheetRows(h entity.PeriodHistory) []sheetRow {
	rows := []sheetRow{
		{"Section": sectionGeneral},
		{"Section": sectionMonth, "Value": string(h.Period)},
		{"Section": sectionCashIncome, "Value": h.CashIncome},
		{"Section": sectionCashRollover, "Value": h.CashRollover},
		{"Section": sectionMealIncome, "Value": h.MealCardIncome},
		{"Section": sectionMealRollover, "Value": h.MealCardRollover},
		{"Section": sectionCashSpend, "Value": h.TotalCashSpend},
		{"Section": sectionMealSpend, "Value": h.TotalMealCardSpend},
		{"Section": sectionFixedPaid, "Value": h.TotalFixedPaid},
		{"Section": sectionCCBalance, "Value": h.TotalCCBalance},
		{"Section": sectionClosingCash, "Value": h.ClosingCash},
		{"Section": sectionClosingMeal, "Value": h.ClosingMealCard},
		{},
		{"Section": sectionFixedExpenses},
	}
	return append(rows, fixedExpenseRows(h.FixedExpenses)...)
}

func fixedExpenseRows(items []entity.FixedExpense) []sheetRow {
	rows := make([]sheetRow, 0, len(items))
	for _, f := range items {
		paid := paidNo
		if f.IsPaid {
			paid = paidYes
		}
		rows = append(rows, sheetRow{
			"Type":        rowFixedExpense,
			"ID":          f.ID,
			"Title":       f.Title,
			"Amount":      f.Amount,
			"IsPaid":      paid,
			"CarriedFrom": string(f.CarriedFrom),
		})
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, rows []sheetRow) error {
	header := make([]interface{}, len(workbookColumns))
	for i, c := range workbookColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}

	for i, row := range rows {
		values := make([]interface{}, len(workbookColumns))
		for j, c := range workbookColumns {
			values[j] = cellValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func cellValue(v interface{}) interface{} {
	switch value := v.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		f, _ := value.Float64()
		return f
	case string:
		if value == "" {
			return nil
		}
		return value
	default:
		return value
	}
}

// ImportWorkbook reads a workbook written by ExportWorkbook. The sheet of
// the open period is required; history sheets are optional.
func ImportWorkbook(r io.Reader, fallback valueobject.Period) (entity.LedgerState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return entity.LedgerState{}, domainerror.NewBackupError(domainerror.ErrCodeUnreadableWorkbook, "failed to read workbook", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return entity.LedgerState{}, domainerror.NewBackupError(
			domainerror.ErrCodeUnreadableWorkbook,
			"failed to open workbook",
			fmt.Errorf("%w: %v", domainerror.ErrUnreadableWorkbook, err),
		)
	}
	defer f.Close()

	verr := domainerror.NewValidationError(string(domainerror.ErrCodeInvalidSnapshot))
	state := entity.NewLedgerState(fallback)
	foundCurrent := false

	for _, sheet := range f.GetSheetList() {
		rows, err := readSheet(f, sheet)
		if err != nil {
			verr.Add(sheet, err.Error())
			continue
		}

		switch {
		case strings.HasPrefix(sheet, strings.TrimSpace(CurrentSheetPrefix)):
			foundCurrent = true
			parseCurrentSheet(sheet, rows, &state, verr)
		default:
			period, err := valueobject.ParsePeriod(sheet)
			if err != nil {
				// Sheets added by hand are ignored.
				continue
			}
			state.History = append(state.History, parseHistorySheet(sheet, period, rows, verr))
		}
	}

	if !foundCurrent {
		verr.Add(CurrentSheetPrefix+"YYYY-MM", "missing sheet")
	}
	if verr.HasErrors() {
		return entity.LedgerState{}, verr
	}

	sort.SliceStable(state.History, func(i, j int) bool {
		return state.History[i].Period < state.History[j].Period
	})

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

func readSheet(f *excelize.File, sheet string) ([]sheetRow, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := raw[0]
	rows := make([]sheetRow, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := sheetRow{}
		for i, cell := range cells {
			if i < len(header) && cell != "" {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCurrentSheet(sheet string, rows []sheetRow, state *entity.LedgerState, verr *domainerror.ValidationError) {
	for i, row := range rows {
		at := fmt.Sprintf("%s!%d", sheet, i+2)
		p := rowParser{row: row, at: at, verr: verr}

		switch p.str("Section") {
		case sectionMonth:
			period, err := valueobject.ParsePeriod(p.str("Value"))
			if err != nil {
				verr.Add(at+".Value", err.Error())
			}
			state.CurrentPeriod = period
		case sectionCashIncome:
			state.CashIncome = p.amount("Value")
		case sectionCashRollover:
			state.CashRollover = p.amount("Value")
		case sectionMealIncome:
			state.MealCardIncome = p.amount("Value")
		case sectionMealRollover:
			state.MealCardRollover = p.amount("Value")
		case sectionGold22:
			state.Gold.Gram22 = p.amount("Value")
		case sectionGold24:
			state.Gold.Gram24 = p.amount("Value")
		case sectionResat:
			state.Gold.Resat = p.amount("Value")
		case sectionPrice22:
			state.GoldPrices.Gram22 = p.amount("Value")
		case sectionPrice24:
			state.GoldPrices.Gram24 = p.amount("Value")
		case sectionPriceResat:
			state.GoldPrices.Resat = p.amount("Value")
		case sectionPriceUpdated:
			state.GoldPrices.LastUpdated, _ = parseTimestamp(p.str("Value"))
		}

		switch p.str("Type") {
		case rowFixedExpense:
			state.FixedExpenses = append(state.FixedExpenses, p.fixedExpense())
		case rowDailyExpense:
			fundType, err := valueobject.ParseFundType(p.str("FundType"))
			if err != nil {
				verr.Add(at+".FundType", err.Error())
			}
			state.DailyExpenses = append(state.DailyExpenses, entity.DailyExpense{
				ID:          idOrNew(p.str("ID")),
				Description: p.str("Description"),
				Amount:      p.amount("Amount"),
				Date:        p.str("Date"),
				FundType:    fundType,
			})
		case rowCCDebt:
			period := valueobject.Period(p.str("Period"))
			if period == "" {
				period = state.CurrentPeriod
			}
			state.CCDebts = append(state.CCDebts, entity.CreditCardDebt{
				ID:                idOrNew(p.str("ID")),
				Description:       p.str("Description"),
				Amount:            p.amount("Amount"),
				Period:            period,
				InstallmentID:     p.str("InstallmentId"),
				InstallmentNumber: p.integer("InstallmentNumber"),
				TotalInstallments: p.integer("TotalInstallments"),
			})
		case rowInstallment:
			createdAt, _ := parseTimestamp(p.str("CreatedAt"))
			state.Installments = append(state.Installments, entity.InstallmentPlan{
				ID:                idOrNew(p.str("ID")),
				Description:       p.str("Description"),
				TotalAmount:       p.amount("TotalAmount"),
				TotalInstallments: p.integer("TotalInstallments"),
				InstallmentsPaid:  p.integer("InstallmentsPaid"),
				CreatedAt:         createdAt,
			})
		}
	}
}

func parseHistorySheet(sheet string, period valueobject.Period, rows []sheetRow, verr *domainerror.ValidationError) entity.PeriodHistory {
	h := entity.PeriodHistory{Period: period, FixedExpenses: []entity.FixedExpense{}}
	for i, row := range rows {
		p := rowParser{row: row, at: fmt.Sprintf("%s!%d", sheet, i+2), verr: verr}

		switch p.str("Section") {
		case sectionCashIncome:
			h.CashIncome = p.amount("Value")
		case sectionCashRollover:
			h.CashRollover = p.amount("Value")
		case sectionMealIncome:
			h.MealCardIncome = p.amount("Value")
		case sectionMealRollover:
			h.MealCardRollover = p.amount("Value")
		case sectionCashSpend:
			h.TotalCashSpend = p.amount("Value")
		case sectionMealSpend:
			h.TotalMealCardSpend = p.amount("Value")
		case sectionFixedPaid:
			h.TotalFixedPaid = p.amount("Value")
		case sectionCCBalance:
			h.TotalCCBalance = p.amount("Value")
		case sectionClosingCash:
			h.ClosingCash = p.amount("Value")
		case sectionClosingMeal:
			h.ClosingMealCard = p.amount("Value")
		}

		if p.str("Type") == rowFixedExpense {
			h.FixedExpenses = append(h.FixedExpenses, p.fixedExpense())
		}
	}
	return h
}

// rowParser reads typed cells from a row and records conversion failures.
type rowParser struct {
	row  sheetRow
	at   string
	verr *domainerror.ValidationError
}

func (p rowParser) str(column string) string {
	if v, ok := p.row[column].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (p rowParser) amount(column string) decimal.Decimal {
	raw := p.str(column)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.verr.Add(p.at+"."+column, "expected a number")
		return decimal.Zero
	}
	return d
}

func (p rowParser) integer(column string) int {
	raw := p.str(column)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.verr.Add(p.at+"."+column, "expected an integer")
		return 0
	}
	return n
}

func (p rowParser) fixedExpense() entity.FixedExpense {
	return entity.FixedExpense{
		ID:          idOrNew(p.str("ID")),
		Title:       p.str("Title"),
		Amount:      p.amount("Amount"),
		IsPaid:      p.str("IsPaid") == paidYes,
		CarriedFrom: valueobject.Period(p.str("CarriedFrom")),
	}
}
