package orderpulseserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined api endpoints.
type Routes map[string][]Route

// ApiHandleFunctions bundles the per-context API handlers the router serves.
type ApiHandleFunctions struct {
	OrderAPI       OrderAPI
	FulfillmentAPI FulfillmentAPI
	TrackingAPI    TrackingAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds api routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			if route.HandlerFunc == nil {
				route.HandlerFunc = defaultFunc
			}
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPut:
				router.PUT(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"OrderAPI": {
			{
				Name:        "CreateOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/orders",
				HandlerFunc: handleFunctions.OrderAPI.CreateOrder,
			},
			{
				Name:        "ListOrders",
				Method:      http.MethodGet,
				Pattern:     "/v1/orders",
				HandlerFunc: handleFunctions.OrderAPI.ListOrders,
			},
			{
				Name:        "OrderStats",
				Method:      http.MethodGet,
				Pattern:     "/v1/orders/stats",
				HandlerFunc: handleFunctions.OrderAPI.OrderStats,
			},
			{
				Name:        "GetOrderById",
				Method:      http.MethodGet,
				Pattern:     "/v1/orders/:orderId",
				HandlerFunc: handleFunctions.OrderAPI.GetOrderById,
			},
			{
				Name:        "TransitionOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/orders/:orderId/transition",
				HandlerFunc: handleFunctions.OrderAPI.TransitionOrder,
			},
			{
				Name:        "AdvanceOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/orders/:orderId/advance",
				HandlerFunc: handleFunctions.OrderAPI.AdvanceOrder,
			},
			{
				Name:        "DispatchOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/orders/:orderId/dispatch",
				HandlerFunc: handleFunctions.OrderAPI.DispatchOrder,
			},
			{
				Name:        "AppendTrackingEvent",
				Method:      http.MethodPost,
				Pattern:     "/v1/orders/:orderId/events",
				HandlerFunc: handleFunctions.OrderAPI.AppendTrackingEvent,
			},
		},
		"FulfillmentAPI": {
			{
				Name:        "CreateFulfillmentOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/fulfillment",
				HandlerFunc: handleFunctions.FulfillmentAPI.CreateOrder,
			},
			{
				Name:        "ListFulfillmentOrders",
				Method:      http.MethodGet,
				Pattern:     "/v1/fulfillment",
				HandlerFunc: handleFunctions.FulfillmentAPI.ListOrders,
			},
			{
				Name:        "FulfillmentBoardStats",
				Method:      http.MethodGet,
				Pattern:     "/v1/fulfillment/stats",
				HandlerFunc: handleFunctions.FulfillmentAPI.BoardStats,
			},
			{
				Name:        "GetFulfillmentOrderById",
				Method:      http.MethodGet,
				Pattern:     "/v1/fulfillment/:orderId",
				HandlerFunc: handleFunctions.FulfillmentAPI.GetOrderById,
			},
			{
				Name:        "TransitionFulfillmentOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/fulfillment/:orderId/transition",
				HandlerFunc: handleFunctions.FulfillmentAPI.TransitionOrder,
			},
			{
				Name:        "AdvanceFulfillmentOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/fulfillment/:orderId/advance",
				HandlerFunc: handleFunctions.FulfillmentAPI.AdvanceOrder,
			},
			{
				Name:        "AssignFulfillmentOrder",
				Method:      http.MethodPost,
				Pattern:     "/v1/fulfillment/:orderId/assign",
				HandlerFunc: handleFunctions.FulfillmentAPI.AssignOrder,
			},
		},
		"TrackingAPI": {
			{
				Name:        "TrackShipment",
				Method:      http.MethodGet,
				Pattern:     "/v1/tracking/:trackingNumber",
				HandlerFunc: handleFunctions.TrackingAPI.TrackShipment,
			},
		},
	}
}
