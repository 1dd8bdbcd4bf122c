package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/dailyexpense"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// DailyExpenseController handles daily entry endpoints.
type DailyExpenseController struct {
	listUseCase   *dailyexpense.ListDailyExpensesUseCase
	createUseCase *dailyexpense.CreateDailyExpenseUseCase
	updateUseCase *dailyexpense.UpdateDailyExpenseUseCase
	deleteUseCase *dailyexpense.DeleteDailyExpenseUseCase
}

// NewDailyExpenseController creates a new daily entry controller instance.
func NewDailyExpenseController(
	listUseCase *dailyexpense.ListDailyExpensesUseCase,
	createUseCase *dailyexpense.CreateDailyExpenseUseCase,
	updateUseCase *dailyexpense.UpdateDailyExpenseUseCase,
	deleteUseCase *dailyexpense.DeleteDailyExpenseUseCase,
) *DailyExpenseController {
	return &DailyExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /daily-expenses requests.
// An optional period query parameter selects a past period.
func (c *DailyExpenseController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), dailyexpense.ListDailyExpensesInput{
		Period: ctx.Query("period"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyExpenseListResponse(output))
}

// Create handles POST /daily-expenses requests.
func (c *DailyExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateDailyExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), dailyexpense.CreateDailyExpenseInput{
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        req.Date,
		FundType:    req.FundType,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDailyExpenseResponse(output.DailyExpense))
}

// Update handles PATCH /daily-expenses/:id requests.
func (c *DailyExpenseController) Update(ctx *gin.Context) {
	var req dto.UpdateDailyExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), dailyexpense.UpdateDailyExpenseInput{
		ID:          ctx.Param("id"),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		FundType:    req.FundType,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyExpenseResponse(output.DailyExpense))
}

// Delete handles DELETE /daily-expenses/:id requests.
func (c *DailyExpenseController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), dailyexpense.DeleteDailyExpenseInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
