package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
)

// Service orchestrates the fulfillment board use cases over the shared store.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// SeedOrder validates and stores a fully formed fulfillment order.
func (s *Service) SeedOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("fulfillment order is nil")
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

// BoardStats aggregates the board rollup; overdue is evaluated against now.
func (s *Service) BoardStats(ctx context.Context, now time.Time) (domain.Stats, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(orders, now), nil
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

// Assign hands the order to a warehouse operator.
func (s *Service) Assign(ctx context.Context, id, assignee string) (*domain.Order, error) {
	assignee = strings.TrimSpace(assignee)
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		order.AssignedTo = assignee
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

var _ ports.Service = (*Service)(nil)
