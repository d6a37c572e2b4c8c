package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&trackingEventRecord{},
		&fulfillmentOrderRecord{},
		&idempotencyRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID                string     `gorm:"primaryKey;column:id"`
	CustomerName      string     `gorm:"column:customer_name;index"`
	CustomerEmail     string     `gorm:"column:customer_email"`
	Status            string     `gorm:"column:status;type:varchar(32);index"`
	Items             string     `gorm:"column:items;type:jsonb"`
	Total             float64    `gorm:"column:total"`
	OrderedAt         time.Time  `gorm:"column:ordered_at;index"`
	EstimatedDelivery *time.Time `gorm:"column:estimated_delivery"`
	TrackingNumber    string     `gorm:"column:tracking_number;index"`
	ShippingAddress   string     `gorm:"column:shipping_address"`
	PaymentMethod     string     `gorm:"column:payment_method"`
	Seq               int64      `gorm:"column:seq;autoIncrement;uniqueIndex"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// Tracking event schema mirrors the orders Postgres adapter; Seq preserves
// chronological append order per order.
type trackingEventRecord struct {
	ID          string    `gorm:"primaryKey;column:id"`
	OrderID     string    `gorm:"column:order_id;index:idx_tracking_events_order_seq"`
	Seq         int       `gorm:"column:seq;index:idx_tracking_events_order_seq"`
	Label       string    `gorm:"column:label"`
	Description string    `gorm:"column:description"`
	Timestamp   time.Time `gorm:"column:timestamp"`
	Location    string    `gorm:"column:location"`
}

func (trackingEventRecord) TableName() string { return "tracking_events" }

// Fulfillment schema mirrors the fulfillment Postgres adapter. SKUs and bin
// locations are denormalized into arrays for warehouse-side lookups.
type fulfillmentOrderRecord struct {
	ID            string         `gorm:"primaryKey;column:id"`
	CustomerName  string         `gorm:"column:customer_name;index"`
	Status        string         `gorm:"column:status;type:varchar(32);index"`
	Priority      string         `gorm:"column:priority;type:varchar(16);index"`
	AssignedTo    string         `gorm:"column:assigned_to;index"`
	Items         string         `gorm:"column:items;type:jsonb"`
	ItemSKUs      pq.StringArray `gorm:"column:item_skus;type:text[]"`
	ItemLocations pq.StringArray `gorm:"column:item_locations;type:text[]"`
	Total         float64        `gorm:"column:total"`
	OrderedAt     time.Time      `gorm:"column:ordered_at"`
	DueDate       time.Time      `gorm:"column:due_date;index"`
	Notes         string         `gorm:"column:notes"`
	Seq           int64          `gorm:"column:seq;autoIncrement;uniqueIndex"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (fulfillmentOrderRecord) TableName() string { return "fulfillment_orders" }

// Idempotency key schema mirrors the orders Postgres adapter.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     string    `gorm:"column:order_id;size:64"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }
