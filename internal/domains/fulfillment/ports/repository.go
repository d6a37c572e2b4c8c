package ports

import (
	"context"
	"errors"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
)

var ErrNotFound = errors.New("fulfillment order not found")

// Repository is the shared fulfillment order collection.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
