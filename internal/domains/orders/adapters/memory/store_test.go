package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

func newOrder(id string, status domain.Status) *domain.Order {
	return &domain.Order{
		ID:           id,
		CustomerName: "John Doe",
		Status:       status,
		Items:        []domain.LineItem{{ID: "1", Name: "Mug", Quantity: 1, UnitPrice: 9.99}},
		Total:        9.99,
		CreatedAt:    time.Now(),
	}
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	for _, id := range []string{"ORD-003", "ORD-001", "ORD-002"} {
		_, err := store.Save(ctx, newOrder(id, domain.StatusPending))
		require.NoError(t, err)
	}

	orders, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, "ORD-003", orders[0].ID)
	require.Equal(t, "ORD-001", orders[1].ID)
	require.Equal(t, "ORD-002", orders[2].ID)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_, err := store.Save(ctx, newOrder("ORD-001", domain.StatusPending))
	require.NoError(t, err)

	got, err := store.GetByID(ctx, "ORD-001")
	require.NoError(t, err)
	got.CustomerName = "Mutated"
	got.Items[0].Name = "Mutated"

	again, err := store.GetByID(ctx, "ORD-001")
	require.NoError(t, err)
	require.Equal(t, "John Doe", again.CustomerName)
	require.Equal(t, "Mug", again.Items[0].Name)
}

func TestStore_GetByTrackingNumber(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	order := newOrder("ORD-001", domain.StatusShipped)
	order.TrackingNumber = "TRK123456789"
	_, err := store.Save(ctx, order)
	require.NoError(t, err)

	found, err := store.GetByTrackingNumber(ctx, "TRK123456789")
	require.NoError(t, err)
	require.Equal(t, "ORD-001", found.ID)

	_, err = store.GetByTrackingNumber(ctx, "TRK000000000")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStore_UpdateUnknownOrder(t *testing.T) {
	store := NewStore()
	_, err := store.Update(context.Background(), "ORD-404", func(o *domain.Order) error { return nil })
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStore_UpdateFailureLeavesStateUntouched(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_, err := store.Save(ctx, newOrder("ORD-001", domain.StatusDelivered))
	require.NoError(t, err)

	_, err = store.Update(ctx, "ORD-001", func(o *domain.Order) error {
		return o.Transition(domain.StatusPending)
	})
	require.ErrorIs(t, err, domain.ErrIllegalTransition)

	unchanged, err := store.GetByID(ctx, "ORD-001")
	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivered, unchanged.Status)
}

func TestStore_SubscribePublishesAfterCommit(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	var events []domain.Event
	store.Subscribe(func(event domain.Event) { events = append(events, event) })

	_, err := store.Save(ctx, newOrder("ORD-001", domain.StatusPending))
	require.NoError(t, err)
	require.Len(t, events, 1)
	seeded, ok := events[0].(domain.OrderSeeded)
	require.True(t, ok)
	require.Equal(t, "ORD-001", seeded.OrderID)

	_, err = store.Update(ctx, "ORD-001", func(o *domain.Order) error {
		o.Advance()
		return o.AppendEvent(domain.TrackingEvent{ID: "1", Label: "Location Update", Timestamp: time.Now()})
	})
	require.NoError(t, err)
	require.Len(t, events, 3)

	changed, ok := events[1].(domain.OrderStatusChanged)
	require.True(t, ok)
	require.Equal(t, domain.StatusPending, changed.FromStatus)
	require.Equal(t, domain.StatusProcessing, changed.ToStatus)

	appended, ok := events[2].(domain.TrackingEventAppended)
	require.True(t, ok)
	require.Equal(t, "Location Update", appended.Label)
}

func TestStore_SaveExistingDoesNotReseed(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	var seededCount int
	store.Subscribe(func(event domain.Event) {
		if _, ok := event.(domain.OrderSeeded); ok {
			seededCount++
		}
	})

	_, err := store.Save(ctx, newOrder("ORD-001", domain.StatusPending))
	require.NoError(t, err)
	_, err = store.Save(ctx, newOrder("ORD-001", domain.StatusProcessing))
	require.NoError(t, err)
	require.Equal(t, 1, seededCount)

	orders, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, domain.StatusProcessing, orders[0].Status)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	_, err := store.Save(ctx, newOrder("ORD-001", domain.StatusPending))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "ORD-001"))
	require.ErrorIs(t, store.Delete(ctx, "ORD-001"), ports.ErrNotFound)

	orders, err := store.List(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)
}
