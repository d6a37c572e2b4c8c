package orders

import (
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/platform/temporal/sequences"
)

const (
	// OrderDispatchTaskQueue is the queue the worker polls for dispatch work.
	OrderDispatchTaskQueue = "order-dispatch"
	// OrderDispatchWorkflowName is the registered workflow type name.
	OrderDispatchWorkflowName = "orders.workflows.DispatchOrder"
)

// OrderDispatchWorkflowInput carries the dispatch command into the workflow.
type OrderDispatchWorkflowInput struct {
	OrderID string
	TraceID string
}

// OrderDispatchWorkflow runs the dispatch sequence for one order.
func OrderDispatchWorkflow(ctx workflow.Context, input OrderDispatchWorkflowInput) (*ordersdomain.Order, error) {
	return sequences.RunOrderDispatchSequence(ctx, input.OrderID)
}
