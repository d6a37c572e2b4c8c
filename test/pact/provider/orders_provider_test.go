//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/Sonali1020/order-pulse-commerce/test/pact"

	orderpulseserver "github.com/Sonali1020/order-pulse-commerce/go"
	fulfillmentmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/memory"
	fulfillmentapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/application"
	ordersmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/observability"
	ordersapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/application"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestOrderPulseProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			if setup {
				app.seedOrder(t, ordersdomain.StatusPending, "")
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			return nil, nil
		},
		pacttest.StateOrderShipped: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetOrders(t)
			if setup {
				app.seedOrder(t, ordersdomain.StatusShipped, pacttest.ExampleTrackingNumber)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetOrders(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	store  *ordersmemory.Store
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	orderStore := ordersmemory.NewStore()
	orderService := ordersobs.New(ordersapp.NewService(orderStore))
	fulfillmentService := fulfillmentapp.NewService(fulfillmentmemory.NewStore())

	handlers := orderpulseserver.ApiHandleFunctions{
		OrderAPI:       orderpulseserver.NewOrderAPI(orderService, nil, ordersmemory.NewIdempotencyStore()),
		FulfillmentAPI: orderpulseserver.NewFulfillmentAPI(fulfillmentService),
		TrackingAPI:    orderpulseserver.NewTrackingAPI(orderService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = orderpulseserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		store:  orderStore,
		server: server,
	}
}

func (a *contractProviderApp) resetOrders(t testing.TB) {
	t.Helper()
	orders, err := a.store.List(context.Background())
	require.NoError(t, err)
	for _, order := range orders {
		_ = a.store.Delete(context.Background(), order.ID)
	}
}

func (a *contractProviderApp) seedOrder(t testing.TB, status ordersdomain.Status, trackingNumber string) {
	t.Helper()
	order, err := ordersdomain.NewOrder(pacttest.ExistingOrderID, "Pact Customer", status,
		[]ordersdomain.LineItem{{ID: "1", Name: "Wireless Headphones", Quantity: 1, UnitPrice: 99.99}},
		99.99, pacttest.ExampleCreatedAt())
	require.NoError(t, err)
	order.CustomerEmail = "pact.customer@example.com"
	order.TrackingNumber = trackingNumber
	_, err = a.store.Save(context.Background(), order)
	require.NoError(t, err)
}
