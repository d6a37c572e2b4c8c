package carrier

import (
	"context"
	"errors"

	carrierclient "github.com/Sonali1020/order-pulse-commerce/internal/clients/http/carrier"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

// Syncer implements the outbound carrier sync port.
type Syncer struct {
	client *carrierclient.Client
}

// NewSyncer wires a carrier HTTP client into a sync adapter.
func NewSyncer(client *carrierclient.Client) *Syncer {
	return &Syncer{client: client}
}

// NotifyShipped pushes the shipped order to the carrier API. The tracking
// number doubles as the idempotency key so carrier retries collapse.
func (s *Syncer) NotifyShipped(ctx context.Context, order *domain.Order) error {
	if s == nil || s.client == nil {
		return errors.New("carrier syncer not configured")
	}
	if order == nil {
		return errors.New("order is nil")
	}
	payload := ToPayload(order)
	return s.client.NotifyShipment(ctx, payload, carrierclient.WithIdempotencyKey(order.TrackingNumber))
}

var _ ports.CarrierSync = (*Syncer)(nil)
