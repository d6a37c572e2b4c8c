package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ordersmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/memory"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func seededStore(t *testing.T, statuses ...domain.Status) *ordersmemory.Store {
	t.Helper()
	store := ordersmemory.NewStore()
	for i, status := range statuses {
		_, err := store.Save(context.Background(), &domain.Order{
			ID:           []string{"ORD-001", "ORD-002", "ORD-003"}[i],
			CustomerName: "John Doe",
			Status:       status,
			Total:        9.99,
			CreatedAt:    time.Now(),
		})
		require.NoError(t, err)
	}
	return store
}

func TestStatusFeed_TickAdvancesOnlyNonTerminal(t *testing.T) {
	store := seededStore(t, domain.StatusPending, domain.StatusDelivered, domain.StatusCancelled)
	feed := NewStatusFeed(store, Config{Probability: 1, Seed: 42}, nil)

	feed.Tick(context.Background(), time.Now())

	orders, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusProcessing, orders[0].Status)
	require.Equal(t, domain.StatusDelivered, orders[1].Status)
	require.Equal(t, domain.StatusCancelled, orders[2].Status)
}

func TestStatusFeed_SameSeedSameOutcome(t *testing.T) {
	run := func() []domain.Status {
		store := seededStore(t, domain.StatusPending, domain.StatusProcessing, domain.StatusShipped)
		feed := NewStatusFeed(store, Config{Probability: 0.5, Seed: 1234}, nil)
		for i := 0; i < 5; i++ {
			feed.Tick(context.Background(), time.Now())
		}
		orders, err := store.List(context.Background())
		require.NoError(t, err)
		statuses := make([]domain.Status, 0, len(orders))
		for _, order := range orders {
			statuses = append(statuses, order.Status)
		}
		return statuses
	}

	require.Equal(t, run(), run())
}

func TestTrackingFeed_TickAppendsScanEvent(t *testing.T) {
	store := seededStore(t, domain.StatusShipped)
	existing := domain.TrackingEvent{ID: "1", Label: "Shipped", Timestamp: time.Now().Add(-time.Hour)}
	_, err := store.Update(context.Background(), "ORD-001", func(o *domain.Order) error {
		return o.AppendEvent(existing)
	})
	require.NoError(t, err)

	feed := NewTrackingFeed(store, Config{Probability: 1, Seed: 42}, nil)
	now := time.Now()
	feed.Tick(context.Background(), now)

	order, err := store.GetByID(context.Background(), "ORD-001")
	require.NoError(t, err)
	require.Len(t, order.Events, 2)
	require.Equal(t, existing.ID, order.Events[0].ID)
	require.Equal(t, existing.Label, order.Events[0].Label)

	appended := order.Events[1]
	require.Equal(t, "Location Update", appended.Label)
	require.Equal(t, "Package scanned at facility", appended.Description)
	require.Equal(t, "Transit Hub", appended.Location)
	require.Equal(t, now, appended.Timestamp)
	require.NotEmpty(t, appended.ID)
}

func TestTrackingFeed_TickSkipsTerminalOrders(t *testing.T) {
	store := seededStore(t, domain.StatusDelivered, domain.StatusCancelled)
	feed := NewTrackingFeed(store, Config{Probability: 1, Seed: 42}, nil)

	feed.Tick(context.Background(), time.Now())

	orders, err := store.List(context.Background())
	require.NoError(t, err)
	for _, order := range orders {
		require.Empty(t, order.Events, "terminal order %s must not receive scan events", order.ID)
	}
}

func TestFeed_StartStopWithoutTickLeavesCollectionUnchanged(t *testing.T) {
	store := seededStore(t, domain.StatusPending, domain.StatusProcessing)
	before, err := store.List(context.Background())
	require.NoError(t, err)

	feed := NewStatusFeed(store, Config{Period: time.Hour, Probability: 1, Seed: 42}, nil)
	feed.Start(context.Background())
	feed.Stop()

	after, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestFeed_StopIsIdempotentAndRestartable(t *testing.T) {
	store := seededStore(t, domain.StatusPending)
	feed := NewStatusFeed(store, Config{Period: time.Hour, Probability: 1, Seed: 42}, nil)

	feed.Stop()

	feed.Start(context.Background())
	feed.Start(context.Background())
	feed.Stop()
	feed.Stop()

	feed.Start(context.Background())
	feed.Stop()
}
