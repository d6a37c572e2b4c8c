package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	fulfillmentdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	fulfillmentports "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
)

const tracerName = "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/observability/service"

// Service decorates the fulfillment service with tracing, logging, and metrics.
type Service struct {
	inner   fulfillmentports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core fulfillment service.
func New(inner fulfillmentports.Service, opts ...Option) fulfillmentports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) SeedOrder(ctx context.Context, order *fulfillmentdomain.Order) (*fulfillmentdomain.Order, error) {
	id := ""
	if order != nil {
		id = order.ID
	}
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.SeedOrder",
		trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.SeedOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to seed fulfillment order", slog.String("order.id", id))
	}
	s.logInfo(ctx, "fulfillment order seeded",
		slog.String("order.id", result.ID), slog.String("priority", string(result.Priority)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*fulfillmentdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.GetOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load fulfillment order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, query fulfillmentdomain.Query) ([]*fulfillmentdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.ListOrders",
		trace.WithAttributes(attribute.String("query.term", query.Term)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list fulfillment orders")
	}
	span.SetAttributes(attribute.Int("orders.matched", len(result)))
	return result, nil
}

func (s *Service) BoardStats(ctx context.Context, now time.Time) (fulfillmentdomain.Stats, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.BoardStats")
	defer span.End()

	stats, err := s.inner.BoardStats(ctx, now)
	if err != nil {
		return fulfillmentdomain.Stats{}, s.handleError(ctx, span, err, "failed to compute board stats")
	}
	span.SetAttributes(
		attribute.Int("orders.total", stats.Total),
		attribute.Int("orders.overdue", stats.Overdue),
	)
	return stats, nil
}

func (s *Service) RequestTransition(ctx context.Context, id string, target fulfillmentdomain.Status) (*fulfillmentdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.RequestTransition",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.target_status", string(target))))
	defer span.End()

	s.logInfo(ctx, "applying board transition", slog.String("order.id", id), slog.String("target", string(target)))
	result, err := s.inner.RequestTransition(ctx, id, target)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "board transition failed", slog.String("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	s.logInfo(ctx, "board transition applied", slog.String("order.id", id), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) AdvanceOrder(ctx context.Context, id string) (*fulfillmentdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.AdvanceOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.AdvanceOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "board advance failed", slog.String("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	return result, nil
}

func (s *Service) Assign(ctx context.Context, id, assignee string) (*fulfillmentdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "FulfillmentService.Assign",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.assignee", assignee)))
	defer span.End()

	result, err := s.inner.Assign(ctx, id, assignee)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "assignment failed", slog.String("order.id", id))
	}
	s.metrics.recordAssignment(ctx)
	s.logInfo(ctx, "order assigned", slog.String("order.id", id), slog.String("assignee", result.AssignedTo))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	transitions metric.Int64Counter
	assignments metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	transitions, _ := m.Int64Counter("fulfillment.service.transitions_applied",
		metric.WithDescription("Number of board status transitions applied"))
	assignments, _ := m.Int64Counter("fulfillment.service.orders_assigned",
		metric.WithDescription("Number of picker assignments recorded"))
	return serviceMetrics{transitions: transitions, assignments: assignments}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status fulfillmentdomain.Status) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordAssignment(ctx context.Context) {
	if m.assignments != nil {
		m.assignments.Add(ctx, 1)
	}
}

var _ fulfillmentports.Service = (*Service)(nil)
