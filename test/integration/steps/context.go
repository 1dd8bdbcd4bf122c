// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/budget-ledger/backend/internal/infra/dependency"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
	"github.com/budget-ledger/backend/test/integration/mock"
)

// goldSourcePath is the route the gold price client is pointed at.
const goldSourcePath = "/prices"

var (
	goldSource     *mock.ApiMock
	goldSourceOnce sync.Once
)

// testContext holds the state of one scenario.
type testContext struct {
	server     *httptest.Server
	injector   *dependency.Injector
	client     *http.Client
	response   *response
	headers    map[string]string
	remembered map[string]string
	db         *mock.Db
	redis      *redis.Client
	timeMock   *mock.Time
	goldSource *mock.ApiMock
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		startGoldSource()
	})

	ctx.AfterSuite(func() {
		if goldSource != nil {
			goldSource.Close()
		}
	})
}

func startGoldSource() *mock.ApiMock {
	goldSourceOnce.Do(func() {
		goldSource = mock.NewApiServer()
		goldSource.Start()
	})
	return goldSource
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		redis:    mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"ledger_meta":       &model.LedgerMetaModel{},
			"fixed_expenses":    &model.FixedExpenseModel{},
			"daily_expenses":    &model.DailyExpenseModel{},
			"cc_debts":          &model.CCDebtModel{},
			"installment_plans": &model.InstallmentModel{},
			"period_history":    &model.PeriodHistoryModel{},
		}),
		goldSource: startGoldSource(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the gold price source responds with status (\d+) and body:$`, test.theGoldPriceSourceRespondsWith)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)
	ctx.When(`^the ledger catches up to "([^"]*)"$`, test.theLedgerCatchesUpTo)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response amount "([^"]*)" should be "([^"]*)"$`, test.theResponseAmountShouldBe)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items?$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External source assertion steps
	ctx.Then(`^the gold price source should have received (\d+) requests?$`, test.theGoldPriceSourceShouldHaveReceived)
}

func (t *testContext) before() error {
	t.response = nil
	t.headers = make(map[string]string)
	t.remembered = make(map[string]string)
	t.timeMock.SetCurrentTime(time.Now())
	t.goldSource.Reset()

	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	if err := mock.ClearRedis(t.redis); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	t.injector = nil
}
