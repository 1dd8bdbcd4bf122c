package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/ccdebt"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// CCDebtController handles credit-card ledger endpoints.
type CCDebtController struct {
	listUseCase   *ccdebt.ListCCDebtsUseCase
	createUseCase *ccdebt.CreateCCDebtUseCase
	updateUseCase *ccdebt.UpdateCCDebtUseCase
	deleteUseCase *ccdebt.DeleteCCDebtUseCase
}

// NewCCDebtController creates a new credit-card controller instance.
func NewCCDebtController(
	listUseCase *ccdebt.ListCCDebtsUseCase,
	createUseCase *ccdebt.CreateCCDebtUseCase,
	updateUseCase *ccdebt.UpdateCCDebtUseCase,
	deleteUseCase *ccdebt.DeleteCCDebtUseCase,
) *CCDebtController {
	return &CCDebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /cc-debts requests.
func (c *CCDebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), ccdebt.ListCCDebtsInput{
		Period: ctx.Query("period"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCCDebtListResponse(output))
}

// Create handles POST /cc-debts requests.
func (c *CCDebtController) Create(ctx *gin.Context) {
	var req dto.CreateCCDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ccdebt.CreateCCDebtInput{
		Description: req.Description,
		Amount:      *req.Amount,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCCDebtResponse(output.CCDebt, false))
}

// Update handles PATCH /cc-debts/:id requests.
func (c *CCDebtController) Update(ctx *gin.Context) {
	var req dto.UpdateCCDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ccdebt.UpdateCCDebtInput{
		ID:          ctx.Param("id"),
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCCDebtResponse(output.CCDebt, false))
}

// Delete handles DELETE /cc-debts/:id requests.
func (c *CCDebtController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), ccdebt.DeleteCCDebtInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
