// Package simulated stands in for the warehouse floor: on a fixed tick it
// rolls a seeded PRNG per order and occasionally advances the lifecycle one
// step, the way pick/pack/ship progress would trickle in from scanners.
package simulated

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

const (
	// DefaultPeriod matches the fulfillment board refresh cadence.
	DefaultPeriod = 8 * time.Second
	// DefaultProbability is the per-order chance of a status step per tick.
	DefaultProbability = 0.1
)

// Config tunes one simulated feed instance.
type Config struct {
	Period      time.Duration
	Probability float64
	// Seed fixes the PRNG stream so tests can assert exact outcomes.
	// Zero seeds from the wall clock.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Period <= 0 {
		c.Period = DefaultPeriod
	}
	if c.Probability <= 0 {
		c.Probability = DefaultProbability
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Feed drives the fulfillment repository with randomized status advances on
// a fixed period.
type Feed struct {
	repo   ports.Repository
	cfg    Config
	logger *slog.Logger
	rng    *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewFeed(repo ports.Repository, cfg Config, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Feed{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Start begins ticking. A second Start is a no-op until Stop is called.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.run(ctx, f.done)
}

// Stop cancels the feed and blocks until the current tick, if any, has
// finished. Afterwards no further mutation of the collection can occur.
func (f *Feed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (f *Feed) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(f.cfg.Period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.tick(ctx)
		}
	}
}

// Tick evaluates every order independently, advancing at most one lifecycle
// step per order. Exported so tests can step deterministically without
// waiting out the period.
func (f *Feed) Tick(ctx context.Context) {
	f.tick(ctx)
}

func (f *Feed) tick(ctx context.Context) {
	orders, err := f.repo.List(ctx)
	if err != nil {
		f.logger.Warn("simulated fulfillment feed failed to list orders", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		if ctx.Err() != nil {
			return
		}
		if f.rng.Float64() >= f.cfg.Probability {
			continue
		}
		if !ordersdomain.CanAdvance(order.Status) {
			continue
		}
		if _, err := f.repo.Update(ctx, order.ID, func(o *domain.Order) error {
			o.Advance()
			return nil
		}); err != nil {
			f.logger.Warn("simulated fulfillment feed update failed",
				slog.String("order.id", order.ID), slog.String("error", err.Error()))
		}
	}
}

var _ ports.Feed = (*Feed)(nil)
