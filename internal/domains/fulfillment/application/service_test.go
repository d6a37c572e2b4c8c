package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fulfillmentmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/memory"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func seedBoardOrder(t *testing.T, svc *Service, id string, status domain.Status, priority domain.Priority, dueDate time.Time) *domain.Order {
	t.Helper()
	order, err := svc.SeedOrder(context.Background(), &domain.Order{
		ID:           id,
		CustomerName: "John Doe",
		Status:       status,
		Priority:     priority,
		Items:        []domain.StockItem{{ID: "1", Name: "Mug", Quantity: 1, SKU: "MG-001", Location: "A1-B2", Available: 5}},
		Total:        9.99,
		CreatedAt:    time.Now(),
		DueDate:      dueDate,
	})
	require.NoError(t, err)
	return order
}

func TestSeedOrder_InvalidPriority(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())

	_, err := svc.SeedOrder(context.Background(), &domain.Order{
		ID:           "ORD-001",
		CustomerName: "John Doe",
		Status:       ordersdomain.StatusPending,
		Priority:     domain.Priority("asap"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRequestTransition_RejectsIllegalTarget(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())
	seedBoardOrder(t, svc, "ORD-001", ordersdomain.StatusPending, domain.PriorityHigh, time.Now().Add(24*time.Hour))

	_, err := svc.RequestTransition(context.Background(), "ORD-001", ordersdomain.StatusDelivered)
	require.ErrorIs(t, err, ErrTransitionRejected)
}

func TestRequestTransition_ForwardStep(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())
	seedBoardOrder(t, svc, "ORD-001", ordersdomain.StatusPending, domain.PriorityHigh, time.Now().Add(24*time.Hour))

	updated, err := svc.RequestTransition(context.Background(), "ORD-001", ordersdomain.StatusProcessing)
	require.NoError(t, err)
	require.Equal(t, ordersdomain.StatusProcessing, updated.Status)
}

func TestAdvanceOrder_UnknownOrder(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())

	_, err := svc.AdvanceOrder(context.Background(), "ORD-404")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAssign(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())
	seedBoardOrder(t, svc, "ORD-001", ordersdomain.StatusPending, domain.PriorityHigh, time.Now().Add(24*time.Hour))

	updated, err := svc.Assign(context.Background(), "ORD-001", "  Sarah Johnson ")
	require.NoError(t, err)
	require.Equal(t, "Sarah Johnson", updated.AssignedTo)
}

func TestListOrders_AppliesQuery(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())
	seedBoardOrder(t, svc, "ORD-001", ordersdomain.StatusPending, domain.PriorityHigh, time.Now().Add(24*time.Hour))
	seedBoardOrder(t, svc, "ORD-002", ordersdomain.StatusShipped, domain.PriorityLow, time.Now().Add(24*time.Hour))

	matched, err := svc.ListOrders(context.Background(), domain.Query{Priority: domain.ExactPriority(domain.PriorityHigh)})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "ORD-001", matched[0].ID)
}

func TestBoardStats_EvaluatesOverdueAgainstNow(t *testing.T) {
	svc := NewService(fulfillmentmemory.NewStore())
	now := time.Now()
	seedBoardOrder(t, svc, "ORD-001", ordersdomain.StatusPending, domain.PriorityLow, now.Add(24*time.Hour))
	seedBoardOrder(t, svc, "ORD-002", ordersdomain.StatusShipped, domain.PriorityUrgent, now.Add(-24*time.Hour))

	stats, err := svc.BoardStats(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Overdue)
	require.Equal(t, 1, stats.Urgent)

	stats, err = svc.BoardStats(context.Background(), now.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, stats.Overdue)
}
