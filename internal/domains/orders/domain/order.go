package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status enumerates the order lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var (
	ErrEmptyID            = errors.New("order id is required")
	ErrEmptyCustomer      = errors.New("customer name is required")
	ErrInvalidStatus      = errors.New("order status is invalid")
	ErrInvalidQuantity    = errors.New("line item quantity must be greater than zero")
	ErrInvalidUnitPrice   = errors.New("line item unit price must not be negative")
	ErrNegativeTotal      = errors.New("order total must not be negative")
	ErrIllegalTransition  = errors.New("status transition is not allowed")
	ErrEmptyTrackingEvent = errors.New("tracking event label is required")
)

// ParseStatus validates free text against the known lifecycle values.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// Valid reports whether the status is one of the five lifecycle values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further automatic transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the forward progression of s. Terminal states map to
// themselves so repeated application is idempotent.
func Next(s Status) Status {
	switch s {
	case StatusPending:
		return StatusProcessing
	case StatusProcessing:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return s
	}
}

// CanAdvance reports whether Next(s) moves the order forward.
func CanAdvance(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped:
		return true
	default:
		return false
	}
}

// LineItem is a purchased product line on an order.
type LineItem struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice float64
}

// TrackingEvent is one entry in an order's shipment timeline. The timeline
// is append-only and chronological; the label is carrier free text, not the
// lifecycle status enum.
type TrackingEvent struct {
	ID          string
	Label       string
	Description string
	Timestamp   time.Time
	Location    string
}

// Order is the customer purchase aggregate.
type Order struct {
	ID                string
	CustomerName      string
	CustomerEmail     string
	Status            Status
	Items             []LineItem
	Total             float64
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	TrackingNumber    string
	ShippingAddress   string
	PaymentMethod     string
	Events            []TrackingEvent
}

// NewOrder validates and constructs a fully formed order. Orders have no
// draft state; whatever seeds the store hands over complete records.
func NewOrder(id, customerName string, status Status, items []LineItem, total float64, createdAt time.Time) (*Order, error) {
	order := &Order{
		ID:           strings.TrimSpace(id),
		CustomerName: strings.TrimSpace(customerName),
		Status:       status,
		Items:        append([]LineItem{}, items...),
		Total:        total,
		CreatedAt:    createdAt,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrEmptyID
	}
	if o.CustomerName == "" {
		return ErrEmptyCustomer
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	if o.Total < 0 {
		return ErrNegativeTotal
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return ErrInvalidUnitPrice
		}
	}
	return nil
}

// ItemsTotal sums quantity times unit price across line items. Renderers
// assume it matches Total; the aggregate does not enforce that at runtime.
func (o *Order) ItemsTotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += float64(item.Quantity) * item.UnitPrice
	}
	return sum
}

// Transition moves the order to target, rejecting targets that are not
// reachable from the current status: the only legal moves are the single
// forward step and cancellation of a non-terminal order.
func (o *Order) Transition(target Status) error {
	if !target.Valid() {
		return ErrInvalidStatus
	}
	if target == o.Status {
		return nil
	}
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %s is terminal", ErrIllegalTransition, o.Status)
	}
	if target != StatusCancelled && target != Next(o.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.Status, target)
	}
	o.Status = target
	return nil
}

// Advance applies the forward progression and reports whether the status
// changed. Terminal orders stay put.
func (o *Order) Advance() bool {
	if !CanAdvance(o.Status) {
		return false
	}
	o.Status = Next(o.Status)
	return true
}

// AppendEvent adds a tracking event to the end of the timeline, keeping the
// existing entries untouched.
func (o *Order) AppendEvent(event TrackingEvent) error {
	if strings.TrimSpace(event.Label) == "" {
		return ErrEmptyTrackingEvent
	}
	o.Events = append(o.Events, event)
	return nil
}

// Clone returns a deep copy so shared store reads never alias caller state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]LineItem{}, o.Items...)
	clone.Events = append([]TrackingEvent{}, o.Events...)
	if o.EstimatedDelivery != nil {
		estimated := *o.EstimatedDelivery
		clone.EstimatedDelivery = &estimated
	}
	return &clone
}
