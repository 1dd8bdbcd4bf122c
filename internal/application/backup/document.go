// Package backup converts the ledger state to and from portable documents.
package backup

import (
	"github.com/shopspring/decimal"
)

// CurrentVersion is the format version written by ExportSnapshot.
const CurrentVersion = 3

// supportedVersions lists the versions ImportSnapshot accepts.
// Versions 1 and 2 use the legacy field names.
var supportedVersions = map[int]bool{1: true, 2: true, 3: true}

// Number is a decimal encoded as a bare JSON number.
type Number struct {
	decimal.Decimal
}

// MarshalJSON encodes the decimal without quotes.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (n *Number) UnmarshalJSON(data []byte) error {
	return n.Decimal.UnmarshalJSON(data)
}

func num(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// Document is the self-describing export of a ledger.
type Document struct {
	Version          int    `json:"version"`
	CurrentPeriod    string `json:"currentPeriod"`
	CashIncome       Number `json:"cashIncome"`
	CashRollover     Number `json:"cashRollover"`
	MealCardIncome   Number `json:"mealCardIncome"`
	MealCardRollover Number `json:"mealCardRollover"`

	FixedExpenses []FixedExpenseDoc `json:"fixedExpenses"`
	DailyExpenses []DailyExpenseDoc `json:"dailyExpenses"`
	CCDebts       []CCDebtDoc       `json:"ccDebts"`
	Installments  []InstallmentDoc  `json:"installments"`

	History    []HistoryDoc  `json:"history"`
	Gold       GoldDoc       `json:"gold"`
	GoldPrices GoldPricesDoc `json:"goldPrices"`
}

// FixedExpenseDoc is the document form of a fixed expense.
type FixedExpenseDoc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      Number `json:"amount"`
	IsPaid      bool   `json:"isPaid"`
	CarriedFrom string `json:"carriedFrom,omitempty"`
}

// DailyExpenseDoc is the document form of a daily expense.
// Legacy documents name the fund "type" and use NAKIT/YK.
type DailyExpenseDoc struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Number `json:"amount"`
	Date        string `json:"date"`
	FundType    string `json:"fundType,omitempty"`
	LegacyType  string `json:"type,omitempty"`
}

// CCDebtDoc is the document form of a credit-card entry.
// Legacy documents use currentInstallment instead of installmentNumber.
type CCDebtDoc struct {
	ID                 string `json:"id"`
	Description        string `json:"description"`
	Amount             Number `json:"amount"`
	Period             string `json:"period,omitempty"`
	InstallmentID      string `json:"installmentId,omitempty"`
	InstallmentNumber  int    `json:"installmentNumber,omitempty"`
	TotalInstallments  int    `json:"totalInstallments,omitempty"`
	CurrentInstallment int    `json:"currentInstallment,omitempty"`
}

// InstallmentDoc is the document form of an installment plan.
// Legacy documents carry installmentCount and remainingInstallments.
type InstallmentDoc struct {
	ID                    string  `json:"id"`
	Description           string  `json:"description"`
	TotalAmount           Number  `json:"totalAmount"`
	TotalInstallments     int     `json:"totalInstallments,omitempty"`
	InstallmentsPaid      int     `json:"installmentsPaid"`
	MonthlyAmount         *Number `json:"monthlyAmount,omitempty"`
	CreatedAt             string  `json:"createdAt,omitempty"`
	InstallmentCount      int     `json:"installmentCount,omitempty"`
	RemainingInstallments *int    `json:"remainingInstallments,omitempty"`
	StartDate             string  `json:"startDate,omitempty"`
}

// HistoryDoc is the document form of an archived period.
type HistoryDoc struct {
	Period             string            `json:"period"`
	CashIncome         Number            `json:"cashIncome"`
	CashRollover       Number            `json:"cashRollover"`
	MealCardIncome     Number            `json:"mealCardIncome"`
	MealCardRollover   Number            `json:"mealCardRollover"`
	TotalCashSpend     Number            `json:"totalCashSpend"`
	TotalMealCardSpend Number            `json:"totalMealCardSpend"`
	TotalFixedPaid     Number            `json:"totalFixedPaid"`
	TotalCCBalance     Number            `json:"totalCcBalance"`
	ClosingCash        Number            `json:"closingCash"`
	ClosingMealCard    Number            `json:"closingMealCard"`
	FixedExpenses      []FixedExpenseDoc `json:"fixedExpenses"`
}

// GoldDoc is the document form of the gold holdings.
type GoldDoc struct {
	Gram22 Number `json:"g22"`
	Gram24 Number `json:"g24"`
	Resat  Number `json:"resat"`
}

// GoldPricesDoc is the document form of the gold prices.
type GoldPricesDoc struct {
	Gram22      Number `json:"g22"`
	Gram24      Number `json:"g24"`
	Resat       Number `json:"resat"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// legacyFields maps the pre-version-3 scalar names to the current ones.
var legacyFields = map[string]string{
	"income":       "cashIncome",
	"rollover":     "cashRollover",
	"ykIncome":     "mealCardIncome",
	"ykRollover":   "mealCardRollover",
	"currentMonth": "currentPeriod",
}
