package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNext_ForwardChain(t *testing.T) {
	status := StatusPending
	for _, want := range []Status{StatusProcessing, StatusShipped, StatusDelivered} {
		status = Next(status)
		require.Equal(t, want, status)
	}
}

func TestNext_TerminalIsIdempotent(t *testing.T) {
	require.Equal(t, StatusDelivered, Next(StatusDelivered))
	require.Equal(t, StatusCancelled, Next(StatusCancelled))
}

func TestCanAdvance(t *testing.T) {
	require.True(t, CanAdvance(StatusPending))
	require.True(t, CanAdvance(StatusProcessing))
	require.True(t, CanAdvance(StatusShipped))
	require.False(t, CanAdvance(StatusDelivered))
	require.False(t, CanAdvance(StatusCancelled))
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Shipped ")
	require.NoError(t, err)
	require.Equal(t, StatusShipped, status)

	_, err = ParseStatus("all")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewOrder_Validates(t *testing.T) {
	_, err := NewOrder("", "John Doe", StatusPending, nil, 10, time.Now())
	require.ErrorIs(t, err, ErrEmptyID)

	_, err = NewOrder("ORD-1", "", StatusPending, nil, 10, time.Now())
	require.ErrorIs(t, err, ErrEmptyCustomer)

	_, err = NewOrder("ORD-1", "John Doe", Status("all"), nil, 10, time.Now())
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = NewOrder("ORD-1", "John Doe", StatusPending, []LineItem{{ID: "1", Name: "Mug", Quantity: 0, UnitPrice: 5}}, 10, time.Now())
	require.ErrorIs(t, err, ErrInvalidQuantity)

	order, err := NewOrder("ORD-1", "John Doe", StatusPending, []LineItem{{ID: "1", Name: "Mug", Quantity: 2, UnitPrice: 5}}, 10, time.Now())
	require.NoError(t, err)
	require.InDelta(t, 10.0, order.ItemsTotal(), 1e-9)
}

func TestTransition_ForwardStep(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusPending}
	require.NoError(t, order.Transition(StatusProcessing))
	require.Equal(t, StatusProcessing, order.Status)
}

func TestTransition_SameStatusIsNoop(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusShipped}
	require.NoError(t, order.Transition(StatusShipped))
	require.Equal(t, StatusShipped, order.Status)
}

func TestTransition_CancelFromAnyNonTerminal(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusProcessing, StatusShipped} {
		order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: status}
		require.NoError(t, order.Transition(StatusCancelled))
		require.Equal(t, StatusCancelled, order.Status)
	}
}

func TestTransition_RejectsSkipsAndRegressions(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusPending}
	err := order.Transition(StatusDelivered)
	require.ErrorIs(t, err, ErrIllegalTransition)
	require.Equal(t, StatusPending, order.Status)

	order.Status = StatusShipped
	err = order.Transition(StatusPending)
	require.ErrorIs(t, err, ErrIllegalTransition)
	require.Equal(t, StatusShipped, order.Status)
}

func TestTransition_RejectsLeavingTerminal(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusDelivered}
	err := order.Transition(StatusPending)
	require.ErrorIs(t, err, ErrIllegalTransition)

	order.Status = StatusCancelled
	err = order.Transition(StatusProcessing)
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestAdvance(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusPending}
	require.True(t, order.Advance())
	require.Equal(t, StatusProcessing, order.Status)

	order.Status = StatusDelivered
	require.False(t, order.Advance())
	require.Equal(t, StatusDelivered, order.Status)
}

func TestAppendEvent_KeepsExistingEntries(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusShipped}
	first := TrackingEvent{ID: "1", Label: "Order Placed", Timestamp: time.Now().Add(-time.Hour)}
	second := TrackingEvent{ID: "2", Label: "Shipped", Timestamp: time.Now()}
	require.NoError(t, order.AppendEvent(first))
	require.NoError(t, order.AppendEvent(second))

	require.Len(t, order.Events, 2)
	require.Equal(t, first, order.Events[0])
	require.Equal(t, second, order.Events[1])
}

func TestAppendEvent_RequiresLabel(t *testing.T) {
	order := &Order{ID: "ORD-1", CustomerName: "John Doe", Status: StatusShipped}
	err := order.AppendEvent(TrackingEvent{ID: "1", Description: "no label"})
	require.ErrorIs(t, err, ErrEmptyTrackingEvent)
	require.Empty(t, order.Events)
}

func TestClone_IsDeep(t *testing.T) {
	estimated := time.Now().Add(48 * time.Hour)
	order := &Order{
		ID:                "ORD-1",
		CustomerName:      "John Doe",
		Status:            StatusShipped,
		Items:             []LineItem{{ID: "1", Name: "Mug", Quantity: 1, UnitPrice: 9.99}},
		EstimatedDelivery: &estimated,
		Events:            []TrackingEvent{{ID: "1", Label: "Shipped"}},
	}
	clone := order.Clone()
	clone.Items[0].Name = "Changed"
	clone.Events[0].Label = "Changed"
	*clone.EstimatedDelivery = clone.EstimatedDelivery.Add(time.Hour)

	require.Equal(t, "Mug", order.Items[0].Name)
	require.Equal(t, "Shipped", order.Events[0].Label)
	require.Equal(t, estimated, *order.EstimatedDelivery)
}
