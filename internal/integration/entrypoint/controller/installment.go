package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/installment"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// InstallmentController handles installment plan endpoints.
type InstallmentController struct {
	listUseCase   *installment.ListInstallmentsUseCase
	createUseCase *installment.CreateInstallmentUseCase
	deleteUseCase *installment.DeleteInstallmentUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(
	listUseCase *installment.ListInstallmentsUseCase,
	createUseCase *installment.CreateInstallmentUseCase,
	deleteUseCase *installment.DeleteInstallmentUseCase,
) *InstallmentController {
	return &InstallmentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /installments requests.
func (c *InstallmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallmentListResponse(output))
}

// Create handles POST /installments requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	var req dto.CreateInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), installment.CreateInstallmentInput{
		Description:       req.Description,
		TotalAmount:       *req.TotalAmount,
		TotalInstallments: req.TotalInstallments,
		InstallmentsPaid:  req.InstallmentsPaid,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInstallmentResponse(output.Plan))
}

// Delete handles DELETE /installments/:id requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), installment.DeleteInstallmentInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
