package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	carrierclient "github.com/Sonali1020/order-pulse-commerce/internal/clients/http/carrier"
	carriersync "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/external/carrier"
	ordersmemory "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/application"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
	platformobservability "github.com/Sonali1020/order-pulse-commerce/internal/platform/observability"
	platformpostgres "github.com/Sonali1020/order-pulse-commerce/internal/platform/postgres"
	orderactivities "github.com/Sonali1020/order-pulse-commerce/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Sonali1020/order-pulse-commerce/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "order-pulse-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderRepo, cleanupRepo := buildOrderRepository(ctx, logger)
	defer cleanupRepo()
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	activityOpts := []orderactivities.Option{}
	if baseURL := os.Getenv("CARRIER_BASE_URL"); baseURL != "" {
		carrier, err := carrierclient.NewCarrierClient(baseURL, nil)
		if err != nil {
			logger.Error("failed to configure carrier client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		activityOpts = append(activityOpts, orderactivities.WithCarrierSync(carriersync.NewSyncer(carrier)))
		logger.Info("carrier handover enabled", slog.String("baseUrl", baseURL))
	}
	activities := orderactivities.NewActivities(orderService, activityOpts...)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderDispatchTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderDispatchWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderDispatchWorkflowName})
	w.RegisterActivityWithOptions(activities.MarkShipped, activity.RegisterOptions{Name: orderactivities.MarkShippedActivityName})
	w.RegisterActivityWithOptions(activities.RecordDispatchEvent, activity.RegisterOptions{Name: orderactivities.RecordDispatchEventActivityName})
	w.RegisterActivityWithOptions(activities.NotifyCarrier, activity.RegisterOptions{Name: orderactivities.NotifyCarrierActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderDispatchTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderRepository(ctx context.Context, logger *slog.Logger) (ordersports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return ordersmemory.NewStore(), cleanup
	}
	logger.Info("worker order repository configured with postgres")
	return orderspostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
