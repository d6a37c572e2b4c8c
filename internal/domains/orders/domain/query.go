package domain

import "strings"

// StatusFilter narrows a listing to one lifecycle status. The zero value
// matches everything, mirroring the "all" option of the dashboard select.
type StatusFilter struct {
	status Status
	exact  bool
}

// AnyStatus matches every order.
func AnyStatus() StatusFilter {
	return StatusFilter{}
}

// ExactStatus matches orders with exactly the given status.
func ExactStatus(status Status) StatusFilter {
	return StatusFilter{status: status, exact: true}
}

// StatusFilterFrom maps user-entered filter text to a filter. "all", empty
// and unknown values all degrade to the match-everything filter.
func StatusFilterFrom(raw string) StatusFilter {
	status, err := ParseStatus(raw)
	if err != nil {
		return AnyStatus()
	}
	return ExactStatus(status)
}

// Matches applies the filter to a single status value.
func (f StatusFilter) Matches(status Status) bool {
	return !f.exact || f.status == status
}

// Query is the search predicate shared by the dashboard listings.
type Query struct {
	// Term is matched case-insensitively as a substring of the order ID,
	// customer name, or customer email. Empty matches everything.
	Term   string
	Status StatusFilter
}

// Matches reports whether the order satisfies every active predicate.
func (q Query) Matches(order *Order) bool {
	if order == nil {
		return false
	}
	if !q.Status.Matches(order.Status) {
		return false
	}
	return termMatches(q.Term, order.ID, order.CustomerName, order.CustomerEmail)
}

// Filter returns the orders matching q, preserving relative order. The
// input slice is never mutated.
func Filter(orders []*Order, q Query) []*Order {
	matched := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if q.Matches(order) {
			matched = append(matched, order)
		}
	}
	return matched
}

// Stats is the dashboard rollup over an order collection.
type Stats struct {
	Total      int
	Pending    int
	Processing int
	Shipped    int
	Delivered  int
	Cancelled  int
	// Revenue sums the order totals across every status, cancelled included.
	Revenue float64
}

// ComputeStats aggregates counts and revenue. It is total over any input;
// an empty collection yields the zero value.
func ComputeStats(orders []*Order) Stats {
	var stats Stats
	for _, order := range orders {
		if order == nil {
			continue
		}
		stats.Total++
		stats.Revenue += order.Total
		switch order.Status {
		case StatusPending:
			stats.Pending++
		case StatusProcessing:
			stats.Processing++
		case StatusShipped:
			stats.Shipped++
		case StatusDelivered:
			stats.Delivered++
		case StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

func termMatches(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
