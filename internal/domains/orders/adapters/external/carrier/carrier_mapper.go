package carrier

import (
	"time"

	carrierclient "github.com/Sonali1020/order-pulse-commerce/internal/clients/http/carrier"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// ToPayload converts the local domain aggregate into the carrier payload shape.
func ToPayload(o *domain.Order) carrierclient.ShipmentPayload {
	pieces := 0
	for _, item := range o.Items {
		pieces += item.Quantity
	}
	dispatchedAt := time.Now().UTC()
	for _, event := range o.Events {
		if event.Label == "Shipped" && !event.Timestamp.IsZero() {
			dispatchedAt = event.Timestamp.UTC()
			break
		}
	}
	return carrierclient.ShipmentPayload{
		Reference:      o.ID,
		TrackingNumber: o.TrackingNumber,
		Recipient:      o.CustomerName,
		Address:        o.ShippingAddress,
		PieceCount:     pieces,
		DispatchedAt:   dispatchedAt.Format(time.RFC3339),
	}
}
