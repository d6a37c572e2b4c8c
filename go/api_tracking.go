package orderpulseserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

// TrackingAPI is the customer-facing shipment lookup, keyed by the carrier
// tracking number rather than the order ID.
type TrackingAPI struct {
	service ordersports.Service
}

// NewTrackingAPI creates a TrackingAPI backed by the orders service.
func NewTrackingAPI(service ordersports.Service) TrackingAPI {
	return TrackingAPI{service: service}
}

// Get /v1/tracking/:trackingNumber
// Resolve a shipment by its carrier tracking number
func (api *TrackingAPI) TrackShipment(c *gin.Context) {
	order, err := api.service.TrackShipment(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}
