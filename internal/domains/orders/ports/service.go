package ports

import (
	"context"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// Service exposes the orders use cases to adapters.
type Service interface {
	SeedOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, query domain.Query) ([]*domain.Order, error)
	OrderStats(ctx context.Context) (domain.Stats, error)
	RequestTransition(ctx context.Context, id string, target domain.Status) (*domain.Order, error)
	MarkShipped(ctx context.Context, id string) (*domain.Order, error)
	AdvanceOrder(ctx context.Context, id string) (*domain.Order, error)
	AppendTrackingEvent(ctx context.Context, id string, event domain.TrackingEvent) (*domain.Order, error)
	TrackShipment(ctx context.Context, trackingNumber string) (*domain.Order, error)
}

// Dispatcher hands an order over to the carrier: assign a tracking number,
// transition to shipped, and record the dispatch on the timeline.
type Dispatcher interface {
	DispatchOrder(ctx context.Context, orderID string) (*domain.Order, error)
}
