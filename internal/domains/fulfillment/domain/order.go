package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// Status is shared with the orders context; the warehouse works the same
// lifecycle the storefront shows.
type Status = ordersdomain.Status

// Priority tags a fulfillment order with picking urgency, independent of
// its lifecycle status.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var (
	ErrEmptyID         = errors.New("fulfillment order id is required")
	ErrEmptyCustomer   = errors.New("customer name is required")
	ErrInvalidPriority = errors.New("priority is invalid")
	ErrInvalidQuantity = errors.New("stock item quantity must be greater than zero")
)

// ParsePriority validates free text against the known priority values.
func ParsePriority(raw string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !priority.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return priority, nil
}

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rush reports whether the priority counts toward the urgent rollup.
func (p Priority) Rush() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// StockItem is a warehouse line to pick: where it sits and how many are on
// hand.
type StockItem struct {
	ID        string
	Name      string
	Quantity  int
	SKU       string
	Location  string
	Available int
}

// Order is the warehouse-facing view of a purchase, emphasizing picking and
// inventory data over payment details.
type Order struct {
	ID           string
	CustomerName string
	Status       Status
	Priority     Priority
	AssignedTo   string
	Items        []StockItem
	Total        float64
	CreatedAt    time.Time
	DueDate      time.Time
	Notes        string
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return ErrEmptyCustomer
	}
	if !o.Status.Valid() {
		return ordersdomain.ErrInvalidStatus
	}
	if !o.Priority.Valid() {
		return ErrInvalidPriority
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Transition moves the order to target under the shared lifecycle rules.
func (o *Order) Transition(target Status) error {
	working := ordersdomain.Order{Status: o.Status}
	if err := working.Transition(target); err != nil {
		return err
	}
	o.Status = working.Status
	return nil
}

// Advance applies the forward progression and reports whether the status
// changed.
func (o *Order) Advance() bool {
	if !ordersdomain.CanAdvance(o.Status) {
		return false
	}
	o.Status = ordersdomain.Next(o.Status)
	return true
}

// Overdue reports whether the order missed its due date and is still not
// delivered, as of now.
func (o *Order) Overdue(now time.Time) bool {
	return o.DueDate.Before(now) && o.Status != ordersdomain.StatusDelivered
}

// Clone returns a deep copy for safe sharing across views.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]StockItem{}, o.Items...)
	return &clone
}
