package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
)

var _ ports.Repository = (*Store)(nil)

// Store is the single authoritative in-memory fulfillment collection. The
// board and its feed both read from and mutate this one copy.
type Store struct {
	mu       sync.RWMutex
	orders   map[string]*domain.Order
	sequence []string
}

func NewStore() *Store {
	return &Store{orders: map[string]*domain.Order{}}
}

// Save inserts or replaces an order, keeping first-seen listing order.
func (s *Store) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("fulfillment order is nil")
	}
	clone := order.Clone()
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, existed := s.orders[clone.ID]; !existed {
		s.sequence = append(s.sequence, clone.ID)
	}
	s.orders[clone.ID] = clone
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

// Update applies mutate under the write lock so a tick and a user action can
// only interleave at whole-order boundaries, never mid-mutation.
func (s *Store) Update(_ context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error) {
	if mutate == nil {
		return nil, errors.New("mutate func is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	working := order.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}
	s.orders[id] = working
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
