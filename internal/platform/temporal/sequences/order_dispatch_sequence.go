package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	orderactivities "github.com/Sonali1020/order-pulse-commerce/internal/platform/temporal/activities/orders"
)

// RunOrderDispatchSequence executes the ordered set of activities needed to
// hand an order over to the carrier.
func RunOrderDispatchSequence(ctx workflow.Context, orderID string) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order dispatch sequence started", "orderId", orderID)

	shipOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	recordOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var shipped ordersdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, shipOptions),
		orderactivities.MarkShippedActivityName, orderID).Get(ctx, &shipped)
	if err != nil {
		logger.Error("order dispatch sequence failed to ship", "orderId", orderID, "error", err)
		return nil, err
	}
	logger.Info("order dispatch sequence shipped", "orderId", orderID, "trackingNumber", shipped.TrackingNumber)

	var recorded ordersdomain.Order
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, recordOptions),
		orderactivities.RecordDispatchEventActivityName, orderID).Get(ctx, &recorded); err != nil {
		logger.Error("order dispatch sequence failed to record event", "orderId", orderID, "error", err)
		return &shipped, err
	}

	notifyOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, notifyOptions),
		orderactivities.NotifyCarrierActivityName, orderID).Get(ctx, nil); err != nil {
		// The order is shipped and the timeline is recorded; a carrier
		// handover failure is surfaced without undoing either.
		logger.Error("order dispatch sequence failed to notify carrier", "orderId", orderID, "error", err)
		return &recorded, err
	}

	logger.Info("order dispatch sequence completed", "orderId", orderID)
	return &recorded, nil
}
