package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	orderpulseserver "github.com/Sonali1020/order-pulse-commerce/go"

	fulfillmentfeed "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/feed/simulated"
	fulfillmentmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/memory"
	fulfillmentobs "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/observability"
	fulfillmentpostgres "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/persistence/postgres"
	fulfillmentapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/application"
	fulfillmentports "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
	fulfillmentseed "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/seed"

	kafkafeed "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/feed/kafka"
	ordersfeed "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/feed/simulated"
	ordersmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/application"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
	ordersseed "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/seed"

	platformobservability "github.com/Sonali1020/order-pulse-commerce/internal/platform/observability"
	platformpostgres "github.com/Sonali1020/order-pulse-commerce/internal/platform/postgres"
)

// Run boots the order HTTP API with observability, repositories, feeds, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "order-pulse-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()

	var orderRepo ordersports.Repository = ordersmemory.NewStore()
	var fulfillmentRepo fulfillmentports.Repository = fulfillmentmemory.NewStore()
	var idempotencyStore ordersports.IdempotencyStore = ordersmemory.NewIdempotencyStore()
	if db != nil {
		orderRepo = orderspostgres.NewRepository(db)
		fulfillmentRepo = fulfillmentpostgres.NewRepository(db)
		idempotencyStore = orderspostgres.NewIdempotencyStore(db)
		logger.Info("repositories configured with postgres")
	}

	coreOrderService := ordersapp.NewService(orderRepo)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	fulfillmentService := fulfillmentobs.New(
		fulfillmentapp.NewService(fulfillmentRepo),
		fulfillmentobs.WithLogger(logger),
		fulfillmentobs.WithTracer(instruments.Tracer("internal.fulfillment.application")),
		fulfillmentobs.WithMeter(instruments.Meter("internal.fulfillment.application")),
	)

	seedCollections(ctx, logger, orderRepo, fulfillmentRepo)

	var dispatcher ordersports.Dispatcher = ordersworkflows.NewInlineDispatcher(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, dispatching inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		dispatcher = ordersworkflows.NewTemporalDispatcher(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	feeds := buildFeeds(cfg, logger, orderRepo, fulfillmentRepo)
	feedCtx, stopFeeds := context.WithCancel(ctx)
	defer stopFeeds()
	for _, feed := range feeds {
		feed.Start(feedCtx)
	}
	defer func() {
		for _, feed := range feeds {
			feed.Stop()
		}
	}()

	handlers := orderpulseserver.ApiHandleFunctions{
		OrderAPI:       orderpulseserver.NewOrderAPI(orderService, dispatcher, idempotencyStore),
		FulfillmentAPI: orderpulseserver.NewFulfillmentAPI(fulfillmentService),
		TrackingAPI:    orderpulseserver.NewTrackingAPI(orderService),
	}

	router := orderpulseserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("order API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// startable is the surface shared by the simulated and Kafka feeds.
type startable interface {
	Start(ctx context.Context)
	Stop()
}

// buildFeeds selects the event sources pushing background updates: the Kafka
// consumer when brokers are configured, the simulated feeds otherwise.
func buildFeeds(cfg Config, logger *slog.Logger, orderRepo ordersports.Repository, fulfillmentRepo fulfillmentports.Repository) []startable {
	if len(cfg.KafkaBrokers) > 0 {
		logger.Info("order feed configured with kafka",
			slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
		return []startable{
			kafkafeed.NewFeed(orderRepo, kafkafeed.Config{
				Brokers: cfg.KafkaBrokers,
				Topic:   cfg.KafkaTopic,
			}, logger),
		}
	}
	if cfg.SimDisabled {
		logger.Info("simulated feeds disabled")
		return nil
	}
	return []startable{
		ordersfeed.NewStatusFeed(orderRepo, ordersfeed.Config{
			Period: cfg.SimAdvancePeriod,
			Seed:   cfg.SimSeed,
		}, logger),
		ordersfeed.NewTrackingFeed(orderRepo, ordersfeed.Config{
			Period: cfg.SimTrackingPeriod,
			Seed:   cfg.SimSeed,
		}, logger),
		fulfillmentfeed.NewFeed(fulfillmentRepo, fulfillmentfeed.Config{
			Period: cfg.SimBoardPeriod,
			Seed:   cfg.SimSeed,
		}, logger),
	}
}

// seedCollections loads the demo data into empty stores so the API serves
// content out of the box. Non-empty stores are left alone.
func seedCollections(ctx context.Context, logger *slog.Logger, orderRepo ordersports.Repository, fulfillmentRepo fulfillmentports.Repository) {
	if existing, err := orderRepo.List(ctx); err == nil && len(existing) == 0 {
		for _, order := range ordersseed.Orders() {
			if _, err := orderRepo.Save(ctx, order); err != nil {
				logger.Warn("failed to seed order", slog.String("order.id", order.ID), slog.String("error", err.Error()))
			}
		}
	}
	if existing, err := fulfillmentRepo.List(ctx); err == nil && len(existing) == 0 {
		for _, order := range fulfillmentseed.Orders() {
			if _, err := fulfillmentRepo.Save(ctx, order); err != nil {
				logger.Warn("failed to seed fulfillment order", slog.String("order.id", order.ID), slog.String("error", err.Error()))
			}
		}
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
