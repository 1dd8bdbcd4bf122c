package dto

import "github.com/budget-ledger/backend/internal/application/usecase/snapshot"

// ImportResponse describes the ledger after an import.
type ImportResponse struct {
	Period        string `json:"period"`
	FixedExpenses int    `json:"fixed_expenses"`
	DailyExpenses int    `json:"daily_expenses"`
	CCDebts       int    `json:"cc_debts"`
	Installments  int    `json:"installments"`
	History       int    `json:"history"`
}

// ToImportResponse converts the import output.
func ToImportResponse(output *snapshot.ImportOutput) ImportResponse {
	return ImportResponse{
		Period:        output.Period,
		FixedExpenses: output.FixedExpenses,
		DailyExpenses: output.DailyExpenses,
		CCDebts:       output.CCDebts,
		Installments:  output.Installments,
		History:       output.History,
	}
}
