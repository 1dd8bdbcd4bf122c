// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/ledger"
	"github.com/budget-ledger/backend/internal/application/usecase/budget"
	"github.com/budget-ledger/backend/internal/application/usecase/ccdebt"
	"github.com/budget-ledger/backend/internal/application/usecase/dailyexpense"
	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	"github.com/budget-ledger/backend/internal/application/usecase/gold"
	"github.com/budget-ledger/backend/internal/application/usecase/installment"
	"github.com/budget-ledger/backend/internal/application/usecase/period"
	"github.com/budget-ledger/backend/internal/application/usecase/snapshot"
	"github.com/budget-ledger/backend/internal/infra/server/router"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-ledger/backend/internal/integration/goldprice"
	"github.com/budget-ledger/backend/internal/integration/persistence"
)

const cachePingTimeout = time.Second

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Store             *ledger.Store
	CatchUpPeriods    *period.CatchUpPeriodsUseCase
	ImportRateLimiter *middleware.RateLimiter
	Router            *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// rdb may be nil, in which case gold prices are never cached.
// The returned store must be loaded before the router serves requests.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	reporter adapter.ErrorReporter,
	now func() time.Time,
) *Injector {
	// Create repositories and the ledger core
	snapshotRepo := persistence.NewSnapshotRepository(db)
	store := ledger.NewStore(snapshotRepo)
	engine := ledger.NewRolloverEngine(store)

	// Create adapters
	priceProvider := goldprice.NewClient(&cfg.GoldPrice)
	var priceCache adapter.GoldPriceCache
	var cacheHealthChecker func() bool
	if rdb != nil {
		priceCache = goldprice.NewRedisCache(rdb)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), cachePingTimeout)
			defer cancel()
			return rdb.Ping(ctx).Err() == nil
		}
	}

	// Create budget use cases
	getLedgerUseCase := budget.NewGetLedgerUseCase(store)
	getSummaryUseCase := budget.NewGetSummaryUseCase(store)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(store)

	// Create fixed expense use cases
	listFixedExpensesUseCase := fixedexpense.NewListFixedExpensesUseCase(store)
	createFixedExpenseUseCase := fixedexpense.NewCreateFixedExpenseUseCase(store)
	updateFixedExpenseUseCase := fixedexpense.NewUpdateFixedExpenseUseCase(store)
	toggleFixedExpenseUseCase := fixedexpense.NewToggleFixedExpenseUseCase(store)
	deleteFixedExpenseUseCase := fixedexpense.NewDeleteFixedExpenseUseCase(store)

	// Create daily expense use cases
	listDailyExpensesUseCase := dailyexpense.NewListDailyExpensesUseCase(store)
	createDailyExpenseUseCase := dailyexpense.NewCreateDailyExpenseUseCase(store, now)
	updateDailyExpenseUseCase := dailyexpense.NewUpdateDailyExpenseUseCase(store)
	deleteDailyExpenseUseCase := dailyexpense.NewDeleteDailyExpenseUseCase(store)

	// Create credit-card use cases
	listCCDebtsUseCase := ccdebt.NewListCCDebtsUseCase(store)
	createCCDebtUseCase := ccdebt.NewCreateCCDebtUseCase(store)
	updateCCDebtUseCase := ccdebt.NewUpdateCCDebtUseCase(store)
	deleteCCDebtUseCase := ccdebt.NewDeleteCCDebtUseCase(store)

	// Create installment use cases
	listInstallmentsUseCase := installment.NewListInstallmentsUseCase(store)
	createInstallmentUseCase := installment.NewCreateInstallmentUseCase(store)
	deleteInstallmentUseCase := installment.NewDeleteInstallmentUseCase(store)

	// Create period use cases
	startNewPeriodUseCase := period.NewStartNewPeriodUseCase(engine, reporter)
	catchUpPeriodsUseCase := period.NewCatchUpPeriodsUseCase(engine, reporter)
	listHistoryUseCase := period.NewListHistoryUseCase(store)

	// Create backup use cases
	exportSnapshotUseCase := snapshot.NewExportSnapshotUseCase(store)
	importSnapshotUseCase := snapshot.NewImportSnapshotUseCase(store, reporter)
	exportWorkbookUseCase := snapshot.NewExportWorkbookUseCase(store)
	importWorkbookUseCase := snapshot.NewImportWorkbookUseCase(store, reporter)

	// Create gold use cases
	getPortfolioUseCase := gold.NewGetPortfolioUseCase(store)
	updateHoldingsUseCase := gold.NewUpdateHoldingsUseCase(store)
	updatePricesUseCase := gold.NewUpdatePricesUseCase(store, now)
	refreshPricesUseCase := gold.NewRefreshPricesUseCase(store, priceProvider, priceCache, cfg.GoldPrice.CacheTTL, reporter)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		cacheHealthChecker,
		func() string {
			return string(store.Snapshot().CurrentPeriod)
		},
	)

	budgetController := controller.NewBudgetController(
		getLedgerUseCase,
		getSummaryUseCase,
		updateBudgetUseCase,
	)

	fixedExpenseController := controller.NewFixedExpenseController(
		listFixedExpensesUseCase,
		createFixedExpenseUseCase,
		updateFixedExpenseUseCase,
		toggleFixedExpenseUseCase,
		deleteFixedExpenseUseCase,
	)

	dailyExpenseController := controller.NewDailyExpenseController(
		listDailyExpensesUseCase,
		createDailyExpenseUseCase,
		updateDailyExpenseUseCase,
		deleteDailyExpenseUseCase,
	)

	ccDebtController := controller.NewCCDebtController(
		listCCDebtsUseCase,
		createCCDebtUseCase,
		updateCCDebtUseCase,
		deleteCCDebtUseCase,
	)

	installmentController := controller.NewInstallmentController(
		listInstallmentsUseCase,
		createInstallmentUseCase,
		deleteInstallmentUseCase,
	)

	periodController := controller.NewPeriodController(
		startNewPeriodUseCase,
		listHistoryUseCase,
	)

	backupController := controller.NewBackupController(
		exportSnapshotUseCase,
		importSnapshotUseCase,
		exportWorkbookUseCase,
		importWorkbookUseCase,
	)

	goldController := controller.NewGoldController(
		getPortfolioUseCase,
		updateHoldingsUseCase,
		updatePricesUseCase,
		refreshPricesUseCase,
	)

	// Create middleware
	importRateLimiter := middleware.NewRateLimiter(cfg.Server.ImportRateLimit, cfg.Server.ImportRateWindow)

	// Create router
	r := router.NewRouter(
		healthController,
		budgetController,
		fixedExpenseController,
		dailyExpenseController,
		ccDebtController,
		installmentController,
		periodController,
		backupController,
		goldController,
		importRateLimiter,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Store:             store,
		CatchUpPeriods:    catchUpPeriodsUseCase,
		ImportRateLimiter: importRateLimiter,
		Router:            r,
	}
}
