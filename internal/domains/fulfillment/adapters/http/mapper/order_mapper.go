package mapper

import (
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

// StockItem is the HTTP representation of one warehouse line.
type StockItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	SKU       string `json:"sku"`
	Location  string `json:"location"`
	Available int    `json:"available"`
}

// Order is the HTTP representation of a fulfillment order.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Status       string      `json:"status"`
	Priority     string      `json:"priority"`
	AssignedTo   string      `json:"assignedTo,omitempty"`
	Items        []StockItem `json:"items"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
	DueDate      time.Time   `json:"dueDate,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// Stats is the HTTP representation of the board rollup.
type Stats struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Overdue   int     `json:"overdue"`
	Urgent    int     `json:"urgent"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

// ToDomainOrder maps a transport Order into the domain aggregate.
func ToDomainOrder(input Order) (*domain.Order, error) {
	status := ordersdomain.StatusPending
	if input.Status != "" {
		parsed, err := ordersdomain.ParseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	priority := domain.PriorityMedium
	if input.Priority != "" {
		parsed, err := domain.ParsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}
	items := make([]domain.StockItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.StockItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			Location:  item.Location,
			Available: item.Available,
		})
	}
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	order := &domain.Order{
		ID:           input.ID,
		CustomerName: input.CustomerName,
		Status:       status,
		Priority:     priority,
		AssignedTo:   input.AssignedTo,
		Items:        items,
		Total:        input.Total,
		CreatedAt:    createdAt,
		DueDate:      input.DueDate,
		Notes:        input.Notes,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// FromDomainOrder maps a domain aggregate into a transport Order.
func FromDomainOrder(o *domain.Order) Order {
	items := make([]StockItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, StockItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			Location:  item.Location,
			Available: item.Available,
		})
	}
	return Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		Priority:     string(o.Priority),
		AssignedTo:   o.AssignedTo,
		Items:        items,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		DueDate:      o.DueDate,
		Notes:        o.Notes,
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
		Total:     stats.Total,
		Active:    stats.Active,
		Overdue:   stats.Overdue,
		Urgent:    stats.Urgent,
		Completed: stats.Completed,
		Revenue:   stats.Revenue,
	}
}
