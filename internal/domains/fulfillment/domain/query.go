package domain

import (
	"strings"
	"time"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// PriorityFilter narrows a listing to one priority. The zero value matches
// everything.
type PriorityFilter struct {
	priority Priority
	exact    bool
}

// AnyPriority matches every order.
func AnyPriority() PriorityFilter {
	return PriorityFilter{}
}

// ExactPriority matches orders with exactly the given priority.
func ExactPriority(priority Priority) PriorityFilter {
	return PriorityFilter{priority: priority, exact: true}
}

// PriorityFilterFrom maps filter text to a filter; "all", empty and unknown
// values degrade to match-everything.
func PriorityFilterFrom(raw string) PriorityFilter {
	priority, err := ParsePriority(raw)
	if err != nil {
		return AnyPriority()
	}
	return ExactPriority(priority)
}

// Matches applies the filter to a single priority value.
func (f PriorityFilter) Matches(priority Priority) bool {
	return !f.exact || f.priority == priority
}

// Query is the fulfillment board search predicate: free text over ID,
// customer, and assignee, AND-composed with status and priority filters.
type Query struct {
	Term     string
	Status   ordersdomain.StatusFilter
	Priority PriorityFilter
}

// Matches reports whether the order satisfies every active predicate.
func (q Query) Matches(order *Order) bool {
	if order == nil {
		return false
	}
	if !q.Status.Matches(order.Status) {
		return false
	}
	if !q.Priority.Matches(order.Priority) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term == "" {
		return true
	}
	for _, field := range []string{order.ID, order.CustomerName, order.AssignedTo} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter returns the orders matching q, preserving relative order.
func Filter(orders []*Order, q Query) []*Order {
	matched := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if q.Matches(order) {
			matched = append(matched, order)
		}
	}
	return matched
}

// Stats is the fulfillment board rollup.
type Stats struct {
	Total int
	// Active counts orders still being worked: pending or processing.
	Active int
	// Overdue counts orders past due and not yet delivered, as of the
	// evaluation time.
	Overdue int
	// Urgent counts orders whose priority is high or urgent.
	Urgent    int
	Completed int
	Revenue   float64
}

// ComputeStats aggregates the board rollup. Overdue is evaluated against
// now, so callers recompute on every render rather than caching.
func ComputeStats(orders []*Order, now time.Time) Stats {
	var stats Stats
	for _, order := range orders {
		if order == nil {
			continue
		}
		stats.Total++
		stats.Revenue += order.Total
		if order.Status == ordersdomain.StatusPending || order.Status == ordersdomain.StatusProcessing {
			stats.Active++
		}
		if order.Overdue(now) {
			stats.Overdue++
		}
		if order.Priority.Rush() {
			stats.Urgent++
		}
		if order.Status == ordersdomain.StatusDelivered {
			stats.Completed++
		}
	}
	return stats
}
