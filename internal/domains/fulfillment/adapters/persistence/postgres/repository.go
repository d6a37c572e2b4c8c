package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists fulfillment orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&fulfillmentOrderRecord{})
	}
	return repo
}

// fulfillmentOrderRecord maps the fulfillment aggregate to a relational
// table. Stock items live on the row as JSON; SKUs and bin locations are
// denormalized into arrays for warehouse-side lookups.
type fulfillmentOrderRecord struct {
	ID            string            `gorm:"primaryKey;column:id"`
	CustomerName  string            `gorm:"column:customer_name;index"`
	Status        string            `gorm:"column:status;type:varchar(32);index"`
	Priority      string            `gorm:"column:priority;type:varchar(16);index"`
	AssignedTo    string            `gorm:"column:assigned_to;index"`
	Items         []stockItemRecord `gorm:"column:items;serializer:json;type:jsonb"`
	ItemSKUs      pq.StringArray    `gorm:"column:item_skus;type:text[]"`
	ItemLocations pq.StringArray    `gorm:"column:item_locations;type:text[]"`
	Total         float64           `gorm:"column:total"`
	OrderedAt     time.Time         `gorm:"column:ordered_at"`
	DueDate       time.Time         `gorm:"column:due_date;index"`
	Notes         string            `gorm:"column:notes"`
	Seq           int64             `gorm:"column:seq;autoIncrement;uniqueIndex"`
	CreatedAt     time.Time         `gorm:"column:created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at"`
}

func (fulfillmentOrderRecord) TableName() string { return "fulfillment_orders" }

type stockItemRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	SKU       string `json:"sku"`
	Location  string `json:"location"`
	Available int    `json:"available"`
}

// Save inserts or updates a fulfillment order.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("fulfillment order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"customer_name":  record.CustomerName,
			"status":         record.Status,
			"priority":       record.Priority,
			"assigned_to":    record.AssignedTo,
			"items":          record.Items,
			"item_skus":      record.ItemSKUs,
			"item_locations": record.ItemLocations,
			"total":          record.Total,
			"ordered_at":     record.OrderedAt,
			"due_date":       record.DueDate,
			"notes":          record.Notes,
			"updated_at":     gorm.Expr("NOW()"),
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, order.ID)
}

// GetByID fetches a fulfillment order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record fulfillmentOrderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
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
		var record fulfillmentOrderRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrNotFound
			}
			return err
		}
		order := record.toDomain()
		if err := mutate(order); err != nil {
			return err
		}
		if err := order.Validate(); err != nil {
			return err
		}
		next := toRecord(order)
		if err := tx.Model(&fulfillmentOrderRecord{}).Where("id = ?", id).Updates(map[string]any{
			"customer_name":  next.CustomerName,
			"status":         next.Status,
			"priority":       next.Priority,
			"assigned_to":    next.AssignedTo,
			"items":          next.Items,
			"item_skus":      next.ItemSKUs,
			"item_locations": next.ItemLocations,
			"total":          next.Total,
			"ordered_at":     next.OrderedAt,
			"due_date":       next.DueDate,
			"notes":          next.Notes,
			"updated_at":     gorm.Expr("NOW()"),
		}).Error; err != nil {
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

// List returns all fulfillment orders in seed order.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []fulfillmentOrderRecord
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Delete removes a fulfillment order.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&fulfillmentOrderRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toRecord(order *domain.Order) fulfillmentOrderRecord {
	items := make([]stockItemRecord, 0, len(order.Items))
	skus := make(pq.StringArray, 0, len(order.Items))
	locations := make(pq.StringArray, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, stockItemRecord{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			Location:  item.Location,
			Available: item.Available,
		})
		skus = append(skus, item.SKU)
		locations = append(locations, item.Location)
	}
	return fulfillmentOrderRecord{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		Status:        string(order.Status),
		Priority:      string(order.Priority),
		AssignedTo:    order.AssignedTo,
		Items:         items,
		ItemSKUs:      skus,
		ItemLocations: locations,
		Total:         order.Total,
		OrderedAt:     order.CreatedAt,
		DueDate:       order.DueDate,
		Notes:         order.Notes,
	}
}

func (record *fulfillmentOrderRecord) toDomain() *domain.Order {
	items := make([]domain.StockItem, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, domain.StockItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			Location:  item.Location,
			Available: item.Available,
		})
	}
	return &domain.Order{
		ID:           record.ID,
		CustomerName: record.CustomerName,
		Status:       domain.Status(record.Status),
		Priority:     domain.Priority(record.Priority),
		AssignedTo:   record.AssignedTo,
		Items:        items,
		Total:        record.Total,
		CreatedAt:    record.OrderedAt,
		DueDate:      record.DueDate,
		Notes:        record.Notes,
	}
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres fulfillment repository not configured")
	}
	return nil
}
