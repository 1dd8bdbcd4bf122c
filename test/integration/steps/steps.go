package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/usecase/period"
	"github.com/budget-ledger/backend/internal/infra/dependency"
	"github.com/budget-ledger/backend/internal/infra/monitoring"
)

func (t *testContext) theCurrentDateIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server != nil {
		return nil
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Server.ImportRateLimit = 1000
	cfg.Server.ImportRateWindow = time.Minute
	cfg.GoldPrice.URL = t.goldSource.GetUrl() + goldSourcePath
	cfg.GoldPrice.MaxRetries = 0
	cfg.GoldPrice.Timeout = 2 * time.Second

	reporter, _, err := monitoring.NewReporter(&config.SentryConfig{}, cfg.Server.Environment)
	if err != nil {
		return err
	}

	t.injector = dependency.NewInjector(cfg, t.db.DbConn, t.redis, reporter, t.timeMock.Now)
	if err := t.injector.Store.Load(context.Background(), t.timeMock.Now()); err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	t.server = httptest.NewServer(t.injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) theGoldPriceSourceRespondsWith(status int, body *godog.DocString) error {
	t.goldSource.SetResponse(http.MethodGet, goldSourcePath, status, body.Content)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	t.remembered[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theLedgerCatchesUpTo(date string) error {
	if t.injector == nil {
		return errors.New("the API server is not running")
	}
	if err := t.theCurrentDateIs(date); err != nil {
		return err
	}
	_, err := t.injector.CatchUpPeriods.Execute(context.Background(), period.CatchUpPeriodsInput{Now: t.timeMock.Now()})
	return err
}

// replacePlaceholders substitutes {{name}} with remembered values.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.remembered {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

// theResponseAmountShouldBe compares a money field numerically, so "4500"
// matches "4500.00".
func (t *testContext) theResponseAmountShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual, err := decimal.NewFromString(fmt.Sprintf("%v", value))
	if err != nil {
		return fmt.Errorf("field '%s' is not an amount: %v", field, value)
	}
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected amount %q: %w", expected, err)
	}
	if !actual.Equal(want) {
		return fmt.Errorf("field '%s' expected amount %s, got %s", field, want, actual)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, quantity int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d", quantity, field, len(items))
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theGoldPriceSourceShouldHaveReceived(quantity int) error {
	count := t.goldSource.RequestCount(http.MethodGet, goldSourcePath)
	if count != quantity {
		return fmt.Errorf("expected %d requests to the gold price source, got %d", quantity, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
