package application

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

// Service orchestrates the orders use cases over the shared store.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// SeedOrder validates and stores a fully formed order.
func (s *Service) SeedOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders returns the orders matching the query in their stored order.
func (s *Service) ListOrders(ctx context.Context, query domain.Query) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(orders, query), nil
}

// OrderStats aggregates counts and revenue over the whole collection.
func (s *Service) OrderStats(ctx context.Context) (domain.Stats, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(orders), nil
}

// RequestTransition moves the order to target. Illegal targets are rejected
// by the aggregate rather than silently applied.
func (s *Service) RequestTransition(ctx context.Context, id string, target domain.Status) (*domain.Order, error) {
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		return order.Transition(target)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// AdvanceOrder applies the forward progression; terminal orders pass through
// unchanged.
func (s *Service) AdvanceOrder(ctx context.Context, id string) (*domain.Order, error) {
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		order.Advance()
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// MarkShipped hands the order to the carrier: a tracking number is assigned
// when missing and the status moves to shipped in the same atomic step.
func (s *Service) MarkShipped(ctx context.Context, id string) (*domain.Order, error) {
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		if order.Status != domain.StatusShipped {
			if err := order.Transition(domain.StatusShipped); err != nil {
				return err
			}
		}
		if order.TrackingNumber == "" {
			order.TrackingNumber = newTrackingNumber()
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// AppendTrackingEvent extends the order's shipment timeline.
func (s *Service) AppendTrackingEvent(ctx context.Context, id string, event domain.TrackingEvent) (*domain.Order, error) {
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		return order.AppendEvent(event)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// TrackShipment resolves an order by its carrier tracking number.
func (s *Service) TrackShipment(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, mapError(domain.ErrEmptyID)
	}
	return s.repo.GetByTrackingNumber(ctx, trackingNumber)
}

func newTrackingNumber() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % 1_000_000_000
	return fmt.Sprintf("TRK%09d", n)
}

var _ ports.Service = (*Service)(nil)
