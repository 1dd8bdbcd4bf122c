// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	budgetController       *controller.BudgetController
	fixedExpenseController *controller.FixedExpenseController
	dailyExpenseController *controller.DailyExpenseController
	ccDebtController       *controller.CCDebtController
	installmentController  *controller.InstallmentController
	periodController       *controller.PeriodController
	backupController       *controller.BackupController
	goldController         *controller.GoldController
	importRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
	fixedExpenseController *controller.FixedExpenseController,
	dailyExpenseController *controller.DailyExpenseController,
	ccDebtController *controller.CCDebtController,
	installmentController *controller.InstallmentController,
	periodController *controller.PeriodController,
	backupController *controller.BackupController,
	goldController *controller.GoldController,
	importRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		budgetController:       budgetController,
		fixedExpenseController: fixedExpenseController,
		dailyExpenseController: dailyExpenseController,
		ccDebtController:       ccDebtController,
		installmentController:  installmentController,
		periodController:       periodController,
		backupController:       backupController,
		goldController:         goldController,
		importRateLimiter:      importRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/ledger", r.budgetController.GetLedger)
		v1.GET("/summary", r.budgetController.GetSummary)
		v1.PUT("/budget", r.budgetController.UpdateBudget)

		fixedExpenses := v1.Group("/fixed-expenses")
		{
			fixedExpenses.GET("", r.fixedExpenseController.List)
			fixedExpenses.POST("", r.fixedExpenseController.Create)
			fixedExpenses.PATCH("/:id", r.fixedExpenseController.Update)
			fixedExpenses.DELETE("/:id", r.fixedExpenseController.Delete)
			fixedExpenses.POST("/:id/toggle", r.fixedExpenseController.Toggle)
		}

		dailyExpenses := v1.Group("/daily-expenses")
		{
			dailyExpenses.GET("", r.dailyExpenseController.List)
			dailyExpenses.POST("", r.dailyExpenseController.Create)
			dailyExpenses.PATCH("/:id", r.dailyExpenseController.Update)
			dailyExpenses.DELETE("/:id", r.dailyExpenseController.Delete)
		}

		ccDebts := v1.Group("/cc-debts")
		{
			ccDebts.GET("", r.ccDebtController.List)
			ccDebts.POST("", r.ccDebtController.Create)
			ccDebts.PATCH("/:id", r.ccDebtController.Update)
			ccDebts.DELETE("/:id", r.ccDebtController.Delete)
		}

		installments := v1.Group("/installments")
		{
			installments.GET("", r.installmentController.List)
			installments.POST("", r.installmentController.Create)
			installments.DELETE("/:id", r.installmentController.Delete)
		}

		periods := v1.Group("/periods")
		{
			periods.POST("/rollover", r.periodController.Rollover)
			periods.GET("/history", r.periodController.History)
		}

		backup := v1.Group("/backup")
		{
			backup.GET("/export", r.backupController.Export)
			backup.POST("/import", r.importRateLimiter.Middleware(), r.backupController.Import)
			backup.GET("/workbook", r.backupController.ExportWorkbook)
			backup.POST("/workbook", r.importRateLimiter.Middleware(), r.backupController.ImportWorkbook)
		}

		gold := v1.Group("/gold")
		{
			gold.GET("", r.goldController.Get)
			gold.PUT("/holdings", r.goldController.UpdateHoldings)
			gold.PUT("/prices", r.goldController.UpdatePrices)
			gold.POST("/prices/refresh", r.goldController.Refresh)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
