package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/period"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// PeriodController handles period rollover endpoints.
type PeriodController struct {
	startNewPeriodUseCase *period.StartNewPeriodUseCase
	listHistoryUseCase    *period.ListHistoryUseCase
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	startNewPeriodUseCase *period.StartNewPeriodUseCase,
	listHistoryUseCase *period.ListHistoryUseCase,
) *PeriodController {
	return &PeriodController{
		startNewPeriodUseCase: startNewPeriodUseCase,
		listHistoryUseCase:    listHistoryUseCase,
	}
}

// Rollover handles POST /periods/rollover requests.
func (c *PeriodController) Rollover(ctx *gin.Context) {
	output, err := c.startNewPeriodUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRolloverResponse(output.Result))
}

// History handles GET /periods/history requests.
func (c *PeriodController) History(ctx *gin.Context) {
	output, err := c.listHistoryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HistoryListResponse{
		History: dto.ToHistoryResponses(output.History),
	})
}
