package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fulfillmentmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/memory"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func seededStore(t *testing.T, statuses ...domain.Status) *fulfillmentmemory.Store {
	t.Helper()
	store := fulfillmentmemory.NewStore()
	ids := []string{"ORD-001", "ORD-002", "ORD-003"}
	for i, status := range statuses {
		_, err := store.Save(context.Background(), &domain.Order{
			ID:           ids[i],
			CustomerName: "John Doe",
			Status:       status,
			Priority:     domain.PriorityMedium,
			Total:        9.99,
			CreatedAt:    time.Now(),
			DueDate:      time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
	}
	return store
}

func TestFeed_TickAdvancesOnlyNonTerminal(t *testing.T) {
	store := seededStore(t, ordersdomain.StatusProcessing, ordersdomain.StatusDelivered)
	feed := NewFeed(store, Config{Probability: 1, Seed: 42}, nil)

	feed.Tick(context.Background())

	orders, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, ordersdomain.StatusShipped, orders[0].Status)
	require.Equal(t, ordersdomain.StatusDelivered, orders[1].Status)
}

func TestFeed_StartStopWithoutTickLeavesCollectionUnchanged(t *testing.T) {
	store := seededStore(t, ordersdomain.StatusPending)
	before, err := store.List(context.Background())
	require.NoError(t, err)

	feed := NewFeed(store, Config{Period: time.Hour, Probability: 1, Seed: 42}, nil)
	feed.Start(context.Background())
	feed.Stop()

	after, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
}
