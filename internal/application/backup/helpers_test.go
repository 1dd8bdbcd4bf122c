package backup

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleState builds a ledger touching every collection.
func sampleState() entity.LedgerState {
	state := entity.NewLedgerState("2025-03")
	state.CashIncome = dec("45000")
	state.CashRollover = dec("1234.56")
	state.MealCardIncome = dec("4000")
	state.MealCardRollover = dec("150.25")

	rent := entity.NewFixedExpense("Kira", dec("15000"))
	rent.IsPaid = true
	carried := entity.NewFixedExpense("Kredi Kartı Borcu (Geçen Ay)", dec("2750.40"))
	carried.CarriedFrom = "2025-02"
	state.FixedExpenses = append(state.FixedExpenses, *rent, *carried)

	state.DailyExpenses = append(state.DailyExpenses,
		*entity.NewDailyExpense("Market", dec("-845.90"), "2025-03-04", valueobject.FundTypeCash),
		*entity.NewDailyExpense("İade", dec("120"), "2025-03-05", valueobject.FundTypeCash),
		*entity.NewDailyExpense("Öğle yemeği", dec("-310"), "2025-03-06", valueobject.FundTypeMealCard),
	)

	plan := entity.NewInstallmentPlan("Telefon", dec("1000"), 3)
	plan.InstallmentsPaid = 1
	plan.CreatedAt = time.Date(2025, 2, 11, 9, 30, 0, 0, time.UTC)
	state.Installments = append(state.Installments, *plan)

	state.CCDebts = append(state.CCDebts,
		*entity.NewCreditCardDebt("Benzin", dec("-1800"), "2025-03"),
		entity.CreditCardDebt{
			ID:                "entry-telefon-2",
			Description:       "Telefon (2/3)",
			Amount:            dec("-333.33"),
			Period:            "2025-03",
			InstallmentID:     plan.ID,
			InstallmentNumber: 2,
			TotalInstallments: 3,
		},
	)

	state.History = append(state.History, entity.PeriodHistory{
		Period:             "2025-02",
		CashIncome:         dec("45000"),
		CashRollover:       dec("0"),
		MealCardIncome:     dec("4000"),
		MealCardRollover:   dec("0"),
		TotalCashSpend:     dec("30000"),
		TotalMealCardSpend: dec("3849.75"),
		TotalFixedPaid:     dec("13765.44"),
		TotalCCBalance:     dec("-2750.40"),
		ClosingCash:        dec("1234.56"),
		ClosingMealCard:    dec("150.25"),
		FixedExpenses: []entity.FixedExpense{
			{ID: "hist-rent", Title: "Kira", Amount: dec("15000"), IsPaid: true},
		},
	})

	state.Gold = entity.GoldHoldings{Gram22: dec("12.5"), Gram24: dec("3"), Resat: dec("1")}
	state.GoldPrices = entity.GoldPrices{
		Gram22:      dec("2850.10"),
		Gram24:      dec("3105.75"),
		Resat:       dec("21450"),
		LastUpdated: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	return state
}

func sampleStateEmpty() entity.LedgerState {
	return entity.NewLedgerState("2025-01")
}
