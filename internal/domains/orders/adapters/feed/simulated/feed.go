// Package simulated stands in for a live carrier push feed: on a fixed tick
// it rolls a seeded PRNG per order and either advances the lifecycle status
// or appends a synthetic tracking event.
package simulated

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

const (
	// DefaultAdvancePeriod matches the management dashboard refresh cadence.
	DefaultAdvancePeriod = 5 * time.Second
	// DefaultTrackingPeriod matches the customer tracking page cadence.
	DefaultTrackingPeriod = 10 * time.Second
	// DefaultAdvanceProbability is the per-order chance of a status step per tick.
	DefaultAdvanceProbability = 0.1
	// DefaultTrackingProbability is the per-order chance of a timeline append per tick.
	DefaultTrackingProbability = 0.3
)

// Synthetic tracking event content, identical for every simulated scan.
const (
	trackingLabel       = "Location Update"
	trackingDescription = "Package scanned at facility"
	trackingLocation    = "Transit Hub"
)

// Config tunes one simulated feed instance.
type Config struct {
	Period      time.Duration
	Probability float64
	// Seed fixes the PRNG stream so tests can assert exact outcomes.
	// Zero seeds from the wall clock.
	Seed int64
}

func (c Config) withDefaults(period time.Duration, probability float64) Config {
	if c.Period <= 0 {
		c.Period = period
	}
	if c.Probability <= 0 {
		c.Probability = probability
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

type action func(ctx context.Context, repo ports.Repository, order *domain.Order, now time.Time) error

// Feed drives one repository with randomized updates on a fixed period.
type Feed struct {
	repo   ports.Repository
	cfg    Config
	logger *slog.Logger
	act    action
	rng    *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewStatusFeed advances non-terminal orders one lifecycle step with the
// configured probability per order per tick.
func NewStatusFeed(repo ports.Repository, cfg Config, logger *slog.Logger) *Feed {
	return newFeed(repo, cfg.withDefaults(DefaultAdvancePeriod, DefaultAdvanceProbability), logger, advanceStatus)
}

// NewTrackingFeed appends one synthetic scan event per lucky in-flight
// order per tick. Delivered and cancelled orders keep a frozen timeline.
func NewTrackingFeed(repo ports.Repository, cfg Config, logger *slog.Logger) *Feed {
	return newFeed(repo, cfg.withDefaults(DefaultTrackingPeriod, DefaultTrackingProbability), logger, appendScan)
}

func newFeed(repo ports.Repository, cfg Config, logger *slog.Logger, act action) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		act:    act,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Start begins ticking. A second Start is a no-op until Stop is called.
// Restarting never replays ticks missed while stopped.
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
		case now := <-ticker.C:
			f.tick(ctx, now)
		}
	}
}

// Tick evaluates every order independently, performing at most one action
// per order. Exported so tests and the demo seeder can step deterministically
// without waiting out the period.
func (f *Feed) Tick(ctx context.Context, now time.Time) {
	f.tick(ctx, now)
}

func (f *Feed) tick(ctx context.Context, now time.Time) {
	orders, err := f.repo.List(ctx)
	if err != nil {
		f.logger.Warn("simulated feed failed to list orders", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		if ctx.Err() != nil {
			return
		}
		if order.Status.Terminal() {
			continue
		}
		if f.rng.Float64() >= f.cfg.Probability {
			continue
		}
		if err := f.act(ctx, f.repo, order, now); err != nil {
			f.logger.Warn("simulated feed update failed",
				slog.String("order.id", order.ID), slog.String("error", err.Error()))
		}
	}
}

func advanceStatus(ctx context.Context, repo ports.Repository, order *domain.Order, _ time.Time) error {
	if !domain.CanAdvance(order.Status) {
		return nil
	}
	_, err := repo.Update(ctx, order.ID, func(o *domain.Order) error {
		o.Advance()
		return nil
	})
	return err
}

func appendScan(ctx context.Context, repo ports.Repository, order *domain.Order, now time.Time) error {
	event := domain.TrackingEvent{
		ID:          uuid.NewString(),
		Label:       trackingLabel,
		Description: trackingDescription,
		Timestamp:   now,
		Location:    trackingLocation,
	}
	_, err := repo.Update(ctx, order.ID, func(o *domain.Order) error {
		return o.AppendEvent(event)
	})
	return err
}

var _ ports.Feed = (*Feed)(nil)
