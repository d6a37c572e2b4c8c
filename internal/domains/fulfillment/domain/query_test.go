package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func boardOrders(now time.Time) []*Order {
	return []*Order{
		{ID: "ORD-001", CustomerName: "John Doe", Status: ordersdomain.StatusPending, Priority: PriorityHigh, AssignedTo: "Sarah Johnson", Total: 139.97, DueDate: now.Add(48 * time.Hour)},
		{ID: "ORD-002", CustomerName: "Jane Smith", Status: ordersdomain.StatusShipped, Priority: PriorityMedium, AssignedTo: "Mike Wilson", Total: 88.96, DueDate: now.Add(-24 * time.Hour)},
		{ID: "ORD-003", CustomerName: "Mike Johnson", Status: ordersdomain.StatusDelivered, Priority: PriorityUrgent, AssignedTo: "Lisa Chen", Total: 79.99, DueDate: now.Add(-48 * time.Hour)},
	}
}

func TestFilter_MatchesAssignee(t *testing.T) {
	now := time.Now()
	matched := Filter(boardOrders(now), Query{Term: "sarah"})
	require.Len(t, matched, 1)
	require.Equal(t, "ORD-001", matched[0].ID)
}

func TestFilter_PriorityAndStatusCompose(t *testing.T) {
	now := time.Now()
	matched := Filter(boardOrders(now), Query{
		Status:   ordersdomain.ExactStatus(ordersdomain.StatusShipped),
		Priority: ExactPriority(PriorityMedium),
	})
	require.Len(t, matched, 1)
	require.Equal(t, "ORD-002", matched[0].ID)

	matched = Filter(boardOrders(now), Query{
		Status:   ordersdomain.ExactStatus(ordersdomain.StatusShipped),
		Priority: ExactPriority(PriorityUrgent),
	})
	require.Empty(t, matched)
}

func TestPriorityFilterFrom_UnknownTextMatchesEverything(t *testing.T) {
	for _, raw := range []string{"", "all", "asap"} {
		filter := PriorityFilterFrom(raw)
		for _, priority := range []Priority{PriorityLow, PriorityUrgent} {
			require.True(t, filter.Matches(priority), "raw=%q priority=%s", raw, priority)
		}
	}
	require.True(t, PriorityFilterFrom("high").Matches(PriorityHigh))
	require.False(t, PriorityFilterFrom("high").Matches(PriorityLow))
}

func TestOverdue_PastDueAndNotDelivered(t *testing.T) {
	now := time.Now()
	shipped := &Order{ID: "B", CustomerName: "Jane Smith", Status: ordersdomain.StatusShipped, Priority: PriorityLow, DueDate: now.Add(-24 * time.Hour)}
	delivered := &Order{ID: "C", CustomerName: "Jane Smith", Status: ordersdomain.StatusDelivered, Priority: PriorityLow, DueDate: now.Add(-24 * time.Hour)}

	require.True(t, shipped.Overdue(now))
	require.False(t, delivered.Overdue(now))
}

func TestComputeStats_OverdueScenario(t *testing.T) {
	now := time.Now()
	orders := []*Order{
		{ID: "A", CustomerName: "John Doe", Status: ordersdomain.StatusPending, Priority: PriorityLow, DueDate: now.Add(24 * time.Hour)},
		{ID: "B", CustomerName: "Jane Smith", Status: ordersdomain.StatusShipped, Priority: PriorityLow, DueDate: now.Add(-24 * time.Hour)},
	}
	stats := ComputeStats(orders, now)

	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Overdue)
	require.Equal(t, 1, stats.Active)
	require.Equal(t, 0, stats.Completed)
}

func TestComputeStats_UrgentCountsHighAndUrgent(t *testing.T) {
	now := time.Now()
	stats := ComputeStats(boardOrders(now), now)

	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Urgent)
	require.Equal(t, 1, stats.Active)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 1, stats.Overdue)
	require.InDelta(t, 308.92, stats.Revenue, 1e-9)
}

func TestComputeStats_EmptyCollectionIsZero(t *testing.T) {
	require.Equal(t, Stats{}, ComputeStats(nil, time.Now()))
}
