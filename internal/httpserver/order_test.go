package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/kitchen_control/internal/models"
	"github.com/Skotchmaster/kitchen_control/internal/repo"
	"github.com/Skotchmaster/kitchen_control/internal/service"
	"github.com/Skotchmaster/kitchen_control/internal/transport"
	pkgdb "github.com/Skotchmaster/kitchen_control/pkg/db"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
	"github.com/Skotchmaster/kitchen_control/pkg/metrics"
	loggingmw "github.com/Skotchmaster/kitchen_control/pkg/middleware/logging"
)

type testEnv struct {
	E       *echo.Echo
	DB      *gorm.DB
	Metrics *metrics.ServerMetrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	db, err := pkgdb.Open(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(ctx, db, models.All()...))
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	m := metrics.NewServerMetrics("test")
	svc := service.NewOrderService(repo.NewGormRepo(db), nil, service.WithCounter(m))

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(m.Middleware())
	e.Use(loggingmw.RequestLogger(logging.NewWithWriter(io.Discard, "debug")))
	Register(e, &Deps{
		OrderHandler: &OrderHTTP{Svc: svc},
		DB:           db,
		Metrics:      m,
	})

	return &testEnv{E: e, DB: db, Metrics: m}
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var resp transport.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createOrder(t *testing.T, env *testEnv, body string) transport.OrderResponse {
	t.Helper()
	rec := env.do(http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	resp := createOrder(t, env, `{"storeId":5,"orderDetails":[{"productId":10,"quantity":2.5}]}`)

	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, 5, resp.StoreID)
	assert.Equal(t, "WAITING", resp.Status)
	assert.False(t, resp.OrderDate.IsZero())
	require.Len(t, resp.OrderDetails, 1)
	assert.Equal(t, 10, resp.OrderDetails[0].ProductID)
	assert.Equal(t, 2.5, resp.OrderDetails[0].Quantity)

	var details []models.OrderDetail
	require.NoError(t, env.DB.Where("order_id = ?", resp.OrderID).Find(&details).Error)
	require.Len(t, details, 1)
}

func TestCreateOrder_JSONShape(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders", `{"storeId":1,"orderDetails":[]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"orderId", "storeId", "orderDate", "status", "orderDetails"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["orderDetails"])
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders", `{"storeId":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrder_MissingStore(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders", `{"orderDetails":[{"productId":1,"quantity":1}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "storeId")
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t)
	created := createOrder(t, env, `{"storeId":3,"orderDetails":[{"productId":7,"quantity":4}]}`)

	rec := env.do(http.MethodGet, "/api/orders/"+strconv.Itoa(created.OrderID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.OrderID, got.OrderID)
	assert.Equal(t, created.StoreID, got.StoreID)
	assert.Equal(t, created.Status, got.Status)
	assert.True(t, created.OrderDate.Equal(got.OrderDate))
	assert.Equal(t, created.OrderDetails, got.OrderDetails)
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/orders/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "order not found with id: 99", resp.Message)
}

func TestGetOrder_BadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/orders/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestGetOrders(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	first := createOrder(t, env, `{"storeId":1,"orderDetails":[{"productId":1,"quantity":1}]}`)
	second := createOrder(t, env, `{"storeId":2}`)

	rec = env.do(http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, first.OrderID, all[0].OrderID)
	assert.Equal(t, second.OrderID, all[1].OrderID)
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t)
	created := createOrder(t, env, `{"storeId":1,"orderDetails":[{"productId":1,"quantity":1},{"productId":2,"quantity":3}]}`)
	path := "/api/orders/" + strconv.Itoa(created.OrderID)

	rec := env.do(http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = env.do(http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.OrderDetail{}).Where("order_id = ?", created.OrderID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteOrder_Missing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodDelete, "/api/orders/12345", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteOrder_BadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodDelete, "/api/orders/1.5", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestStorageFailureIsInternalError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.DB.Migrator().DropTable(&models.OrderDetail{}, &models.Order{}))

	rec := env.do(http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "internal error", resp.Message)
}

func TestRoutingErrorsUseEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)

	rec = env.do(http.MethodPut, "/api/orders/1", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, decodeError(t, rec).Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/health/live", "").Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/health/ready", "").Code)

	require.NoError(t, pkgdb.Close(env.DB))
	rec := env.do(http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusServiceUnavailable, decodeError(t, rec).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	createOrder(t, env, `{"storeId":1}`)

	rec := env.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "kitchen_test_orders_created_total 1")
	assert.Contains(t, body, `route="/api/orders"`)
}
