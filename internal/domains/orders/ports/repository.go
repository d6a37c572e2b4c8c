package ports

import (
	"context"
	"errors"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository is the authoritative order collection. All holders share one
// instance; implementations hand out defensive copies.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error)
	// Update applies mutate to the stored order in one atomic step. When
	// mutate returns an error the order is left unchanged.
	Update(ctx context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
