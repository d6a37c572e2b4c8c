package domain

import "time"

// Event is the base interface for order domain events published by the store.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// OrderSeeded is raised when a new order enters the store.
type OrderSeeded struct {
	BaseEvent
	OrderID string
	Status  Status
}

// EventName returns the event type identifier.
func (e OrderSeeded) EventName() string {
	return "orders.order.seeded"
}

// OrderStatusChanged is raised on every transition, manual or simulated.
type OrderStatusChanged struct {
	BaseEvent
	OrderID    string
	FromStatus Status
	ToStatus   Status
}

// EventName returns the event type identifier.
func (e OrderStatusChanged) EventName() string {
	return "orders.order.status_changed"
}

// TrackingEventAppended is raised when the shipment timeline grows.
type TrackingEventAppended struct {
	BaseEvent
	OrderID string
	Label   string
}

// EventName returns the event type identifier.
func (e TrackingEventAppended) EventName() string {
	return "orders.order.tracking_event_appended"
}
