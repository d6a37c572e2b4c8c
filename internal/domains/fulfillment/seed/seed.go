// Package seed provides the demo fulfillment collection served when the
// process starts without a backing database.
package seed

import (
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Orders returns the demo collection. Callers receive fresh copies on every
// invocation, so seeded stores never share state.
func Orders() []*domain.Order {
	return []*domain.Order{
		{
			ID:           "ORD-001",
			CustomerName: "John Doe",
			Status:       ordersdomain.StatusPending,
			Priority:     domain.PriorityHigh,
			AssignedTo:   "Sarah Johnson",
			Items: []domain.StockItem{
				{ID: "1", Name: "Wireless Headphones", Quantity: 1, SKU: "WH-001", Location: "A1-B2", Available: 25},
				{ID: "2", Name: "Phone Case", Quantity: 2, SKU: "PC-001", Location: "A2-C3", Available: 100},
			},
			Total:     139.97,
			CreatedAt: ts("2024-01-15T10:30:00Z"),
			DueDate:   ts("2024-01-17T17:00:00Z"),
			Notes:     "Customer requested expedited shipping",
		},
		{
			ID:           "ORD-002",
			CustomerName: "Jane Smith",
			Status:       ordersdomain.StatusProcessing,
			Priority:     domain.PriorityMedium,
			AssignedTo:   "Mike Wilson",
			Items: []domain.StockItem{
				{ID: "3", Name: "Laptop Stand", Quantity: 1, SKU: "LS-001", Location: "B1-A4", Available: 15},
				{ID: "4", Name: "USB-C Cable", Quantity: 3, SKU: "UC-001", Location: "C1-D2", Available: 200},
			},
			Total:     88.96,
			CreatedAt: ts("2024-01-15T09:15:00Z"),
			DueDate:   ts("2024-01-16T17:00:00Z"),
		},
		{
			ID:           "ORD-003",
			CustomerName: "Mike Johnson",
			Status:       ordersdomain.StatusShipped,
			Priority:     domain.PriorityLow,
			AssignedTo:   "Lisa Chen",
			Items: []domain.StockItem{
				{ID: "5", Name: "Gaming Mouse", Quantity: 1, SKU: "GM-001", Location: "D1-E3", Available: 8},
			},
			Total:     79.99,
			CreatedAt: ts("2024-01-14T14:45:00Z"),
			DueDate:   ts("2024-01-16T17:00:00Z"),
		},
	}
}
