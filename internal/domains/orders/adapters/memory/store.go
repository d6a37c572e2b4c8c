package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

var _ ports.Repository = (*Store)(nil)

// Subscriber receives order domain events after the store mutation that
// produced them has committed.
type Subscriber func(domain.Event)

// Store is the single authoritative in-memory order collection. Views read
// projections from it and subscribe for changes instead of holding private
// copies of the orders.
type Store struct {
	mu          sync.RWMutex
	orders      map[string]*domain.Order
	sequence    []string
	subscribers []Subscriber
}

func NewStore() *Store {
	return &Store{orders: map[string]*domain.Order{}}
}

// Subscribe registers fn for every subsequent mutation. Delivery is
// synchronous and in commit order.
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Save inserts or replaces an order, keeping first-seen listing order.
func (s *Store) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, existed := s.orders[clone.ID]
	if !existed {
		s.sequence = append(s.sequence, clone.ID)
	}
	s.orders[clone.ID] = clone
	subscribers := s.snapshotSubscribers()
	s.mu.Unlock()

	if !existed {
		publish(subscribers, domain.OrderSeeded{
			BaseEvent: domain.BaseEvent{Timestamp: time.Now()},
			OrderID:   clone.ID,
			Status:    clone.Status,
		})
	}
	return clone.Clone(), nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (s *Store) GetByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.sequence {
		order := s.orders[id]
		if order != nil && order.TrackingNumber == trackingNumber {
			return order.Clone(), nil
		}
	}
	return nil, ports.ErrNotFound
}

// Update applies mutate under the write lock so a tick and a user action can
// only interleave at whole-order boundaries, never mid-mutation.
func (s *Store) Update(_ context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error) {
	if mutate == nil {
		return nil, errors.New("mutate func is nil")
	}
	s.mu.Lock()
	order, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return nil, ports.ErrNotFound
	}
	previousStatus := order.Status
	previousEvents := len(order.Events)

	working := order.Clone()
	if err := mutate(working); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := working.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.orders[id] = working
	subscribers := s.snapshotSubscribers()
	s.mu.Unlock()

	if working.Status != previousStatus {
		publish(subscribers, domain.OrderStatusChanged{
			BaseEvent:  domain.BaseEvent{Timestamp: time.Now()},
			OrderID:    id,
			FromStatus: previousStatus,
			ToStatus:   working.Status,
		})
	}
	for _, event := range working.Events[previousEvents:] {
		publish(subscribers, domain.TrackingEventAppended{
			BaseEvent: domain.BaseEvent{Timestamp: event.Timestamp},
			OrderID:   id,
			Label:     event.Label,
		})
	}
	return working.Clone(), nil
}

// List returns the collection in insertion order.
func (s *Store) List(_ context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*domain.Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		if order, ok := s.orders[id]; ok {
			list = append(list, order.Clone())
		}
	}
	return list, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.orders, id)
	for i, existing := range s.sequence {
		if existing == id {
			s.sequence = append(s.sequence[:i], s.sequence[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) snapshotSubscribers() []Subscriber {
	return append([]Subscriber{}, s.subscribers...)
}

func publish(subscribers []Subscriber, event domain.Event) {
	for _, fn := range subscribers {
		fn(event)
	}
}
