// Package seed provides the demo order collection served when the process
// starts without a backing database.
package seed

import (
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

// Orders returns the demo collection. Callers receive fresh copies on every
// invocation, so seeded stores never share state.
func Orders() []*domain.Order {
	return []*domain.Order{
		{
			ID:            "ORD-001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Status:        domain.StatusPending,
			Items: []domain.LineItem{
				{ID: "1", Name: "Wireless Headphones", Quantity: 1, UnitPrice: 99.99},
				{ID: "2", Name: "Phone Case", Quantity: 2, UnitPrice: 19.99},
			},
			Total:             139.97,
			CreatedAt:         ts("2024-01-15T10:30:00Z"),
			EstimatedDelivery: tsp("2024-01-20T00:00:00Z"),
			ShippingAddress:   "123 Main St, New York, NY 10001",
			PaymentMethod:     "Credit Card (**** 4242)",
		},
		{
			ID:            "ORD-002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Status:        domain.StatusProcessing,
			Items: []domain.LineItem{
				{ID: "3", Name: "Laptop Stand", Quantity: 1, UnitPrice: 49.99},
				{ID: "4", Name: "USB-C Cable", Quantity: 3, UnitPrice: 12.99},
			},
			Total:             88.96,
			CreatedAt:         ts("2024-01-15T09:15:00Z"),
			EstimatedDelivery: tsp("2024-01-18T00:00:00Z"),
			TrackingNumber:    "TRK123456789",
			ShippingAddress:   "456 Oak Ave, Los Angeles, CA 90210",
			PaymentMethod:     "PayPal",
			Events:            timeline(),
		},
		{
			ID:            "ORD-003",
			CustomerName:  "Mike Johnson",
			CustomerEmail: "mike@example.com",
			Status:        domain.StatusShipped,
			Items: []domain.LineItem{
				{ID: "5", Name: "Gaming Mouse", Quantity: 1, UnitPrice: 79.99},
			},
			Total:             79.99,
			CreatedAt:         ts("2024-01-14T14:45:00Z"),
			EstimatedDelivery: tsp("2024-01-17T00:00:00Z"),
			TrackingNumber:    "TRK987654321",
			ShippingAddress:   "789 Pine St, Chicago, IL 60601",
			PaymentMethod:     "Credit Card (**** 5555)",
		},
	}
}

func timeline() []domain.TrackingEvent {
	return []domain.TrackingEvent{
		{
			ID:          "1",
			Label:       "Order Placed",
			Description: "Your order has been received and is being prepared",
			Timestamp:   ts("2024-01-15T10:30:00Z"),
			Location:    "Processing Center",
		},
		{
			ID:          "2",
			Label:       "Order Confirmed",
			Description: "Payment processed successfully",
			Timestamp:   ts("2024-01-15T10:45:00Z"),
			Location:    "Payment Center",
		},
		{
			ID:          "3",
			Label:       "Preparing for Shipment",
			Description: "Items are being picked and packed",
			Timestamp:   ts("2024-01-16T08:30:00Z"),
			Location:    "Fulfillment Center - NYC",
		},
		{
			ID:          "4",
			Label:       "Shipped",
			Description: "Package has been dispatched and is on its way",
			Timestamp:   ts("2024-01-17T14:20:00Z"),
			Location:    "Distribution Center - NYC",
		},
		{
			ID:          "5",
			Label:       "In Transit",
			Description: "Package is en route to your location",
			Timestamp:   ts("2024-01-18T09:15:00Z"),
			Location:    "Local Delivery Hub",
		},
	}
}
