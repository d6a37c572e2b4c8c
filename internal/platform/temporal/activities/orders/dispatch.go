package orders

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

const (
	// MarkShippedActivityName transitions the order to shipped and assigns a tracking number.
	MarkShippedActivityName = "orders.activities.MarkShipped"
	// RecordDispatchEventActivityName appends the dispatch entry to the tracking timeline.
	RecordDispatchEventActivityName = "orders.activities.RecordDispatchEvent"
	// NotifyCarrierActivityName announces the shipment to the carrier handover API.
	NotifyCarrierActivityName = "orders.activities.NotifyCarrier"
)

// Dispatch timeline entry content, matching what carriers report on pickup.
const (
	DispatchEventLabel       = "Shipped"
	DispatchEventDescription = "Package has been dispatched and is on its way"
	DispatchEventLocation    = "Distribution Center"
)

// Activities groups the order dispatch activities.
type Activities struct {
	service ordersports.Service
	carrier ordersports.CarrierSync
}

// Option configures the activities bundle.
type Option func(*Activities)

// WithCarrierSync enables outbound shipment notifications to the carrier.
func WithCarrierSync(carrier ordersports.CarrierSync) Option {
	return func(a *Activities) {
		a.carrier = carrier
	}
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service, opts ...Option) *Activities {
	activities := &Activities{service: service}
	for _, opt := range opts {
		if opt != nil {
			opt(activities)
		}
	}
	return activities
}

// MarkShipped moves the order to shipped and returns the updated aggregate.
func (a *Activities) MarkShipped(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("dispatch activity not initialized", "orderId", orderID)
		return nil, errors.New("dispatch activity not initialized")
	}
	logger.Info("MarkShipped activity started", "orderId", orderID)
	order, err := a.service.MarkShipped(ctx, orderID)
	if err != nil {
		logger.Error("MarkShipped activity failed", "orderId", orderID, "error", err)
		return nil, err
	}
	logger.Info("MarkShipped activity completed", "orderId", orderID, "trackingNumber", order.TrackingNumber)
	return order, nil
}

// RecordDispatchEvent appends the carrier pickup entry to the timeline.
// Retries are safe: a prior successful append is detected and skipped.
func (a *Activities) RecordDispatchEvent(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("dispatch activity not initialized", "orderId", orderID)
		return nil, errors.New("dispatch activity not initialized")
	}

	existing, err := a.service.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("RecordDispatchEvent failed to load order", "orderId", orderID, "error", err)
		return nil, err
	}
	for _, event := range existing.Events {
		if event.Label == DispatchEventLabel {
			logger.Info("dispatch event already recorded; skipping", "orderId", orderID)
			return existing, nil
		}
	}

	event := ordersdomain.TrackingEvent{
		ID:          activity.GetInfo(ctx).WorkflowExecution.RunID,
		Label:       DispatchEventLabel,
		Description: DispatchEventDescription,
		Timestamp:   time.Now(),
		Location:    DispatchEventLocation,
	}
	order, err := a.service.AppendTrackingEvent(ctx, orderID, event)
	if err != nil {
		logger.Error("RecordDispatchEvent failed", "orderId", orderID, "error", err)
		return nil, err
	}
	logger.Info("RecordDispatchEvent completed", "orderId", orderID)
	return order, nil
}

// NotifyCarrier pushes the shipment notice to the carrier. A worker without a
// carrier integration configured skips the handover quietly.
func (a *Activities) NotifyCarrier(ctx context.Context, orderID string) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("dispatch activity not initialized", "orderId", orderID)
		return errors.New("dispatch activity not initialized")
	}
	if a.carrier == nil {
		logger.Info("carrier sync not configured; skipping handover", "orderId", orderID)
		return nil
	}
	order, err := a.service.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("NotifyCarrier failed to load order", "orderId", orderID, "error", err)
		return err
	}
	if err := a.carrier.NotifyShipped(ctx, order); err != nil {
		logger.Error("NotifyCarrier failed", "orderId", orderID, "error", err)
		return err
	}
	logger.Info("NotifyCarrier completed", "orderId", orderID, "trackingNumber", order.TrackingNumber)
	return nil
}
