package mapper

import (
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// LineItem is the HTTP representation of one purchased line.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// TrackingEvent is the HTTP representation of one timeline entry.
type TrackingEvent struct {
	ID          string    `json:"id"`
	Label       string    `json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
}

// Order is the HTTP representation used for both request and response bodies.
type Order struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail,omitempty"`
	Status            string          `json:"status"`
	Items             []LineItem      `json:"items"`
	Total             float64         `json:"total"`
	CreatedAt         time.Time       `json:"createdAt,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	ShippingAddress   string          `json:"shippingAddress,omitempty"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	Events            []TrackingEvent `json:"events,omitempty"`
}

// Stats is the HTTP representation of the dashboard rollup.
type Stats struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Processing int     `json:"processing"`
	Shipped    int     `json:"shipped"`
	Delivered  int     `json:"delivered"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}

// ToDomainOrder maps a transport Order into the domain aggregate.
func ToDomainOrder(input Order) (*domain.Order, error) {
	status := domain.StatusPending
	if input.Status != "" {
		parsed, err := domain.ParseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	items := make([]domain.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	order, err := domain.NewOrder(input.ID, input.CustomerName, status, items, input.Total, createdAt)
	if err != nil {
		return nil, err
	}
	order.CustomerEmail = input.CustomerEmail
	order.EstimatedDelivery = cloneTime(input.EstimatedDelivery)
	order.TrackingNumber = input.TrackingNumber
	order.ShippingAddress = input.ShippingAddress
	order.PaymentMethod = input.PaymentMethod
	for _, event := range input.Events {
		if err := order.AppendEvent(toDomainEvent(event)); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ToDomainEvent maps a transport timeline entry into the domain value.
func ToDomainEvent(input TrackingEvent) domain.TrackingEvent {
	return toDomainEvent(input)
}

func toDomainEvent(input TrackingEvent) domain.TrackingEvent {
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return domain.TrackingEvent{
		ID:          input.ID,
		Label:       input.Label,
		Description: input.Description,
		Timestamp:   timestamp,
		Location:    input.Location,
	}
}

// FromDomainOrder maps a domain aggregate into a transport Order.
func FromDomainOrder(o *domain.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, LineItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	events := make([]TrackingEvent, 0, len(o.Events))
	for _, event := range o.Events {
		events = append(events, TrackingEvent{
			ID:          event.ID,
			Label:       event.Label,
			Description: event.Description,
			Timestamp:   event.Timestamp,
			Location:    event.Location,
		})
	}
	return Order{
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		Status:            string(o.Status),
		Items:             items,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: cloneTime(o.EstimatedDelivery),
		TrackingNumber:    o.TrackingNumber,
		ShippingAddress:   o.ShippingAddress,
		PaymentMethod:     o.PaymentMethod,
		Events:            events,
	}
}

// FromDomainOrderList maps a slice of aggregates to transport Orders.
func FromDomainOrderList(list []*domain.Order) []Order {
	result := make([]Order, 0, len(list))
	for _, o := range list {
		result = append(result, FromDomainOrder(o))
	}
	return result
}

// FromStats maps the domain rollup to its transport shape.
func FromStats(stats domain.Stats) Stats {
	return Stats{
		Total:      stats.Total,
		Pending:    stats.Pending,
		Processing: stats.Processing,
		Shipped:    stats.Shipped,
		Delivered:  stats.Delivered,
		Cancelled:  stats.Cancelled,
		Revenue:    stats.Revenue,
	}
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}
