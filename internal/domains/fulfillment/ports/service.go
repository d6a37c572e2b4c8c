package ports

import (
	"context"
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
)

// Service exposes the fulfillment board use cases to adapters.
type Service interface {
	SeedOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, query domain.Query) ([]*domain.Order, error)
	BoardStats(ctx context.Context, now time.Time) (domain.Stats, error)
	RequestTransition(ctx context.Context, id string, target domain.Status) (*domain.Order, error)
	AdvanceOrder(ctx context.Context, id string) (*domain.Order, error)
	Assign(ctx context.Context, id, assignee string) (*domain.Order, error)
}
