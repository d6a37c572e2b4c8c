package orderpulseserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	fulfillmentmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/memory"
	fulfillmentapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/application"
	fulfillmentdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func newFulfillmentTestRouter(t *testing.T, seed ...*fulfillmentdomain.Order) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := fulfillmentmemory.NewStore()
	for _, order := range seed {
		_, err := store.Save(context.Background(), order)
		require.NoError(t, err)
	}
	handlers := ApiHandleFunctions{
		FulfillmentAPI: NewFulfillmentAPI(fulfillmentapp.NewService(store)),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func testBoardOrder(id string, status fulfillmentdomain.Status, priority fulfillmentdomain.Priority, dueDate time.Time) *fulfillmentdomain.Order {
	return &fulfillmentdomain.Order{
		ID:           id,
		CustomerName: "John Doe",
		Status:       status,
		Priority:     priority,
		AssignedTo:   "Sarah Johnson",
		Items:        []fulfillmentdomain.StockItem{{ID: "1", Name: "Wireless Headphones", Quantity: 1, SKU: "WH-001", Location: "A1-B2", Available: 25}},
		Total:        99.99,
		CreatedAt:    time.Now(),
		DueDate:      dueDate,
	}
}

func TestListFulfillmentOrders_FiltersByPriority(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	router := newFulfillmentTestRouter(t,
		testBoardOrder("ORD-001", ordersdomain.StatusPending, fulfillmentdomain.PriorityHigh, due),
		testBoardOrder("ORD-002", ordersdomain.StatusPending, fulfillmentdomain.PriorityLow, due),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/fulfillment?priority=high", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "ORD-001", orders[0]["id"])
}

func TestFulfillmentBoardStats(t *testing.T) {
	router := newFulfillmentTestRouter(t,
		testBoardOrder("ORD-001", ordersdomain.StatusPending, fulfillmentdomain.PriorityUrgent, time.Now().Add(24*time.Hour)),
		testBoardOrder("ORD-002", ordersdomain.StatusShipped, fulfillmentdomain.PriorityLow, time.Now().Add(-24*time.Hour)),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/fulfillment/stats", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	require.EqualValues(t, 2, stats["total"])
	require.EqualValues(t, 1, stats["overdue"])
	require.EqualValues(t, 1, stats["urgent"])
}

func TestAssignFulfillmentOrder(t *testing.T) {
	router := newFulfillmentTestRouter(t,
		testBoardOrder("ORD-001", ordersdomain.StatusPending, fulfillmentdomain.PriorityHigh, time.Now().Add(24*time.Hour)),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/fulfillment/ORD-001/assign", strings.NewReader(`{"assignedTo":"Mike Wilson"}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var order map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &order))
	require.Equal(t, "Mike Wilson", order["assignedTo"])
}

func TestTransitionFulfillmentOrder_Conflict(t *testing.T) {
	router := newFulfillmentTestRouter(t,
		testBoardOrder("ORD-001", ordersdomain.StatusDelivered, fulfillmentdomain.PriorityLow, time.Now()),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/fulfillment/ORD-001/transition", strings.NewReader(`{"status":"pending"}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusConflict, recorder.Code)
}
