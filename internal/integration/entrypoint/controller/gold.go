package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/application/usecase/gold"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

// GoldController handles gold portfolio endpoints.
type GoldController struct {
	getPortfolioUseCase   *gold.GetPortfolioUseCase
	updateHoldingsUseCase *gold.UpdateHoldingsUseCase
	updatePricesUseCase   *gold.UpdatePricesUseCase
	refreshPricesUseCase  *gold.RefreshPricesUseCase
}

// NewGoldController creates a new gold controller instance.
func NewGoldController(
	getPortfolioUseCase *gold.GetPortfolioUseCase,
	updateHoldingsUseCase *gold.UpdateHoldingsUseCase,
	updatePricesUseCase *gold.UpdatePricesUseCase,
	refreshPricesUseCase *gold.RefreshPricesUseCase,
) *GoldController {
	return &GoldController{
		getPortfolioUseCase:   getPortfolioUseCase,
		updateHoldingsUseCase: updateHoldingsUseCase,
		updatePricesUseCase:   updatePricesUseCase,
		refreshPricesUseCase:  refreshPricesUseCase,
	}
}

// Get handles GET /gold requests.
func (c *GoldController) Get(ctx *gin.Context) {
	output, err := c.getPortfolioUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPortfolio(output))
}

// UpdateHoldings handles PUT /gold/holdings requests.
func (c *GoldController) UpdateHoldings(ctx *gin.Context) {
	var req dto.UpdateHoldingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updateHoldingsUseCase.Execute(ctx.Request.Context(), gold.UpdateHoldingsInput{
		Gram22: req.Gram22,
		Gram24: req.Gram24,
		Resat:  req.Resat,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPortfolio(output))
}

// UpdatePrices handles PUT /gold/prices requests.
func (c *GoldController) UpdatePrices(ctx *gin.Context) {
	var req dto.UpdatePricesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	output, err := c.updatePricesUseCase.Execute(ctx.Request.Context(), gold.UpdatePricesInput{
		Gram22: req.Gram22,
		Gram24: req.Gram24,
		Resat:  req.Resat,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPortfolio(output))
}

// Refresh handles POST /gold/prices/refresh requests.
// force=true bypasses the price cache.
func (c *GoldController) Refresh(ctx *gin.Context) {
	force, _ := strconv.ParseBool(ctx.Query("force"))

	output, err := c.refreshPricesUseCase.Execute(ctx.Request.Context(), gold.RefreshPricesInput{
		Force: force,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	response := toPortfolio(&output.Portfolio)
	response.FromCache = output.FromCache
	ctx.JSON(http.StatusOK, response)
}

func toPortfolio(output *gold.PortfolioOutput) dto.PortfolioResponse {
	return dto.ToPortfolioResponse(output.Holdings, output.Prices, output.Value)
}
