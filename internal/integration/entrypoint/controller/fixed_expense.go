package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// FixedExpenseController handles fixed expense endpoints.
type FixedExpenseController struct {
	listUseCase   *fixedexpense.ListFixedExpensesUseCase
	createUseCase *fixedexpense.CreateFixedExpenseUseCase
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase
	toggleUseCase *fixedexpense.ToggleFixedExpenseUseCase
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase,
	toggleUseCase *fixedexpense.ToggleFixedExpenseUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseListResponse(output))
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedexpense.CreateFixedExpenseInput{
		Title:  req.Title,
		Amount: *req.Amount,
		IsPaid: req.IsPaid,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Update handles PATCH /fixed-expenses/:id requests.
func (c *FixedExpenseController) Update(ctx *gin.Context) {
	var req dto.UpdateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fixedexpense.UpdateFixedExpenseInput{
		ID:     ctx.Param("id"),
		Title:  req.Title,
		Amount: req.Amount,
		IsPaid: req.IsPaid,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Toggle handles POST /fixed-expenses/:id/toggle requests.
func (c *FixedExpenseController) Toggle(ctx *gin.Context) {
	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), fixedexpense.ToggleFixedExpenseInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Delete handles DELETE /fixed-expenses/:id requests.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
