package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	orderspostgres "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/persistence/postgres"
	platformpostgres "github.com/Sonali1020/order-pulse-commerce/internal/platform/postgres"
)

// DefaultPurgeTTL keeps delivered and cancelled orders for a week before
// removal.
const DefaultPurgeTTL = 7 * 24 * time.Hour

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge orders")
	}

	repo := orderspostgres.NewRepository(db)
	purged, err := repo.PurgeTerminal(ctx, purgeTTLFromEnv())
	if err != nil {
		log.Fatalf("failed to purge orders: %v", err)
	}
	log.Printf("order purge completed, removed %d orders", purged)
}

func purgeTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("PURGE_TTL_HOURS"))
	if raw == "" {
		return DefaultPurgeTTL
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return DefaultPurgeTTL
	}
	return time.Duration(hours) * time.Hour
}
