package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &trackingEventRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table. Line items are
// small enough to live on the row as a JSON column.
type orderRecord struct {
	ID                string            `gorm:"primaryKey;column:id"`
	CustomerName      string            `gorm:"column:customer_name;index"`
	CustomerEmail     string            `gorm:"column:customer_email"`
	Status            string            `gorm:"column:status;type:varchar(32);index"`
	Items             []lineItemRecord  `gorm:"column:items;serializer:json;type:jsonb"`
	Total             float64           `gorm:"column:total"`
	OrderedAt         time.Time         `gorm:"column:ordered_at;index"`
	EstimatedDelivery *time.Time        `gorm:"column:estimated_delivery"`
	TrackingNumber    string            `gorm:"column:tracking_number;index"`
	ShippingAddress   string            `gorm:"column:shipping_address"`
	PaymentMethod     string            `gorm:"column:payment_method"`
	Seq               int64             `gorm:"column:seq;autoIncrement;uniqueIndex"`
	CreatedAt         time.Time         `gorm:"column:created_at"`
	UpdatedAt         time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// trackingEventRecord keeps the append-only shipment timeline; Seq preserves
// chronological append order.
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

// Save inserts or updates an order together with its timeline.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"customer_name":      record.CustomerName,
				"customer_email":     record.CustomerEmail,
				"status":             record.Status,
				"items":              record.Items,
				"total":              record.Total,
				"ordered_at":         record.OrderedAt,
				"estimated_delivery": record.EstimatedDelivery,
				"tracking_number":    record.TrackingNumber,
				"shipping_address":   record.ShippingAddress,
				"payment_method":     record.PaymentMethod,
				"updated_at":         gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
			return err
		}
		return replaceEvents(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, order.ID)
}

// GetByID fetches an order and its timeline by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.hydrate(ctx, &record)
}

// GetByTrackingNumber resolves the order a carrier tracking number belongs to.
func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.hydrate(ctx, &record)
}

// Update applies mutate inside one transaction so a row is never observed
// mid-mutation.
func (r *Repository) Update(ctx context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if mutate == nil {
		return nil, errors.New("mutate func is nil")
	}
	var updated *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record orderRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrNotFound
			}
			return err
		}
		order, err := hydrateTx(tx, &record)
		if err != nil {
			return err
		}
		if err := mutate(order); err != nil {
			return err
		}
		if err := order.Validate(); err != nil {
			return err
		}
		next := toRecord(order)
		next.Seq = record.Seq
		if err := tx.Model(&orderRecord{}).Where("id = ?", id).Updates(map[string]any{
			"customer_name":      next.CustomerName,
			"customer_email":     next.CustomerEmail,
			"status":             next.Status,
			"items":              next.Items,
			"total":              next.Total,
			"ordered_at":         next.OrderedAt,
			"estimated_delivery": next.EstimatedDelivery,
			"tracking_number":    next.TrackingNumber,
			"shipping_address":   next.ShippingAddress,
			"payment_method":     next.PaymentMethod,
			"updated_at":         gorm.Expr("NOW()"),
		}).Error; err != nil {
			return err
		}
		if err := replaceEvents(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns all orders in seed order.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		order, err := r.hydrate(ctx, &records[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Delete removes an order and its timeline.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&orderRecord{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return tx.Delete(&trackingEventRecord{}, "order_id = ?", id).Error
	})
}

// PurgeTerminal removes delivered and cancelled orders last touched before
// the cutoff. Used by the order-purger job.
func (r *Repository) PurgeTerminal(ctx context.Context, olderThan time.Duration) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-olderThan)
	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&orderRecord{}).
			Where("status IN ? AND updated_at < ?", []string{string(domain.StatusDelivered), string(domain.StatusCancelled)}, cutoff).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Delete(&trackingEventRecord{}, "order_id IN ?", ids).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, "id IN ?", ids)
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})
	return purged, err
}

func (r *Repository) hydrate(ctx context.Context, record *orderRecord) (*domain.Order, error) {
	return hydrateTx(r.db.WithContext(ctx), record)
}

func hydrateTx(tx *gorm.DB, record *orderRecord) (*domain.Order, error) {
	var events []trackingEventRecord
	if err := tx.Order("seq ASC").Find(&events, "order_id = ?", record.ID).Error; err != nil {
		return nil, err
	}
	return record.toDomain(events), nil
}

func replaceEvents(tx *gorm.DB, order *domain.Order) error {
	if err := tx.Delete(&trackingEventRecord{}, "order_id = ?", order.ID).Error; err != nil {
		return err
	}
	if len(order.Events) == 0 {
		return nil
	}
	records := make([]trackingEventRecord, 0, len(order.Events))
	for i, event := range order.Events {
		records = append(records, trackingEventRecord{
			ID:          event.ID,
			OrderID:     order.ID,
			Seq:         i,
			Label:       event.Label,
			Description: event.Description,
			Timestamp:   event.Timestamp,
			Location:    event.Location,
		})
	}
	return tx.Create(&records).Error
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]lineItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemRecord{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return orderRecord{
		ID:                order.ID,
		CustomerName:      order.CustomerName,
		CustomerEmail:     order.CustomerEmail,
		Status:            string(order.Status),
		Items:             items,
		Total:             order.Total,
		OrderedAt:         order.CreatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
		TrackingNumber:    order.TrackingNumber,
		ShippingAddress:   order.ShippingAddress,
		PaymentMethod:     order.PaymentMethod,
	}
}

func (record *orderRecord) toDomain(events []trackingEventRecord) *domain.Order {
	items := make([]domain.LineItem, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, domain.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	timeline := make([]domain.TrackingEvent, 0, len(events))
	for _, event := range events {
		timeline = append(timeline, domain.TrackingEvent{
			ID:          event.ID,
			Label:       event.Label,
			Description: event.Description,
			Timestamp:   event.Timestamp,
			Location:    event.Location,
		})
	}
	return &domain.Order{
		ID:                record.ID,
		CustomerName:      record.CustomerName,
		CustomerEmail:     record.CustomerEmail,
		Status:            domain.Status(record.Status),
		Items:             items,
		Total:             record.Total,
		CreatedAt:         record.OrderedAt,
		EstimatedDelivery: record.EstimatedDelivery,
		TrackingNumber:    record.TrackingNumber,
		ShippingAddress:   record.ShippingAddress,
		PaymentMethod:     record.PaymentMethod,
		Events:            timeline,
	}
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}
