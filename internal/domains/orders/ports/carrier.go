package ports

import (
	"context"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// CarrierSync defines outbound integration for announcing shipments to the
// carrier's handover API.
type CarrierSync interface {
	NotifyShipped(ctx context.Context, order *domain.Order) error
}
