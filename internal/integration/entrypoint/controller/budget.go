package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/budget"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the ledger, summary and budget endpoints.
type BudgetController struct {
	getLedgerUseCase    *budget.GetLedgerUseCase
	getSummaryUseCase   *budget.GetSummaryUseCase
	updateBudgetUseCase *budget.UpdateBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getLedgerUseCase *budget.GetLedgerUseCase,
	getSummaryUseCase *budget.GetSummaryUseCase,
	updateBudgetUseCase *budget.UpdateBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		getLedgerUseCase:    getLedgerUseCase,
		getSummaryUseCase:   getSummaryUseCase,
		updateBudgetUseCase: updateBudgetUseCase,
	}
}

// GetLedger handles GET /ledger requests.
func (c *BudgetController) GetLedger(ctx *gin.Context) {
	output, err := c.getLedgerUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// GetSummary handles GET /summary requests.
func (c *BudgetController) GetSummary(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// UpdateBudget handles PUT /budget requests.
func (c *BudgetController) UpdateBudget(ctx *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateBudgetUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		CashIncome:       req.CashIncome,
		CashRollover:     req.CashRollover,
		MealCardIncome:   req.MealCardIncome,
		MealCardRollover: req.MealCardRollover,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
