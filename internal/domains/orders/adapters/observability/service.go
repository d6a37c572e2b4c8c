package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

const tracerName = "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
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

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
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

func (s *Service) SeedOrder(ctx context.Context, order *ordersdomain.Order) (*ordersdomain.Order, error) {
	id := ""
	if order != nil {
		id = order.ID
	}
	ctx, span := s.tracer.Start(ctx, "OrderService.SeedOrder",
		trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.SeedOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to seed order", slog.String("order.id", id))
	}
	s.logInfo(ctx, "order seeded", slog.String("order.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, query ordersdomain.Query) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders",
		trace.WithAttributes(attribute.String("query.term", query.Term)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.matched", len(result)))
	return result, nil
}

func (s *Service) OrderStats(ctx context.Context) (ordersdomain.Stats, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.OrderStats")
	defer span.End()

	stats, err := s.inner.OrderStats(ctx)
	if err != nil {
		return ordersdomain.Stats{}, s.handleError(ctx, span, err, "failed to compute order stats")
	}
	span.SetAttributes(
		attribute.Int("orders.total", stats.Total),
		attribute.Float64("orders.revenue", stats.Revenue),
	)
	return stats, nil
}

func (s *Service) RequestTransition(ctx context.Context, id string, target ordersdomain.Status) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.RequestTransition",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("order.target_status", string(target))))
	defer span.End()

	s.logInfo(ctx, "applying transition", slog.String("order.id", id), slog.String("target", string(target)))
	result, err := s.inner.RequestTransition(ctx, id, target)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "transition failed", slog.String("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	s.logInfo(ctx, "transition applied", slog.String("order.id", id), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) MarkShipped(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.MarkShipped", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "marking order shipped", slog.String("order.id", id))
	result, err := s.inner.MarkShipped(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "mark shipped failed", slog.String("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	s.logInfo(ctx, "order shipped", slog.String("order.id", id), slog.String("tracking.number", result.TrackingNumber))
	return result, nil
}

func (s *Service) AdvanceOrder(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AdvanceOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.AdvanceOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "advance failed", slog.String("order.id", id))
	}
	s.metrics.recordTransition(ctx, result.Status)
	return result, nil
}

func (s *Service) AppendTrackingEvent(ctx context.Context, id string, event ordersdomain.TrackingEvent) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AppendTrackingEvent",
		trace.WithAttributes(attribute.String("order.id", id), attribute.String("tracking.label", event.Label)))
	defer span.End()

	result, err := s.inner.AppendTrackingEvent(ctx, id, event)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "tracking append failed", slog.String("order.id", id))
	}
	s.metrics.recordTrackingEvent(ctx)
	return result, nil
}

func (s *Service) TrackShipment(ctx context.Context, trackingNumber string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.TrackShipment",
		trace.WithAttributes(attribute.String("tracking.number", trackingNumber)))
	defer span.End()

	result, err := s.inner.TrackShipment(ctx, trackingNumber)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "tracking lookup failed", slog.String("tracking.number", trackingNumber))
	}
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
	transitions    metric.Int64Counter
	trackingEvents metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	transitions, _ := m.Int64Counter("orders.service.transitions_applied",
		metric.WithDescription("Number of status transitions applied"))
	trackingEvents, _ := m.Int64Counter("orders.service.tracking_events_appended",
		metric.WithDescription("Number of tracking events appended"))
	return serviceMetrics{transitions: transitions, trackingEvents: trackingEvents}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status ordersdomain.Status) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordTrackingEvent(ctx context.Context) {
	if m.trackingEvents != nil {
		m.trackingEvents.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
