// Package kafka consumes order update events from a Kafka topic and applies
// them to the shared store. It is the production counterpart of the
// simulated feed.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
)

// DefaultGroupID identifies this consumer group on the update topic.
const DefaultGroupID = "order-pulse-feed"

// updateMessage is the wire shape published by upstream carriers.
type updateMessage struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status,omitempty"`
	Event   *struct {
		Label       string    `json:"label"`
		Description string    `json:"description"`
		Location    string    `json:"location"`
		Timestamp   time.Time `json:"timestamp"`
	} `json:"event,omitempty"`
}

// Config selects the brokers and topic to consume.
type Config struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Feed applies Kafka order updates to the repository.
type Feed struct {
	repo   ports.Repository
	reader *kafkago.Reader
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed builds a consumer over the given brokers and topic.
func NewFeed(repo ports.Repository, cfg Config, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = DefaultGroupID
	}
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
	return &Feed{repo: repo, reader: reader, logger: logger}
}

// Start launches the consume loop. It does not block.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.consume(ctx, f.done)
}

// Stop cancels the loop, closes the reader, and waits for the in-flight
// message, if any, to finish applying.
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
	if err := f.reader.Close(); err != nil {
		f.logger.Warn("kafka feed reader close failed", slog.String("error", err.Error()))
	}
}

func (f *Feed) consume(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		message, err := f.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			f.logger.Warn("kafka feed read failed", slog.String("error", err.Error()))
			continue
		}
		f.apply(ctx, message.Value)
	}
}

func (f *Feed) apply(ctx context.Context, payload []byte) {
	var update updateMessage
	if err := json.Unmarshal(payload, &update); err != nil {
		f.logger.Warn("kafka feed dropped malformed update", slog.String("error", err.Error()))
		return
	}
	if update.OrderID == "" {
		return
	}

	_, err := f.repo.Update(ctx, update.OrderID, func(order *domain.Order) error {
		if update.Status != "" {
			target, err := domain.ParseStatus(update.Status)
			if err != nil {
				return err
			}
			if err := order.Transition(target); err != nil {
				return err
			}
		}
		if update.Event != nil {
			timestamp := update.Event.Timestamp
			if timestamp.IsZero() {
				timestamp = time.Now()
			}
			return order.AppendEvent(domain.TrackingEvent{
				ID:          uuid.NewString(),
				Label:       update.Event.Label,
				Description: update.Event.Description,
				Timestamp:   timestamp,
				Location:    update.Event.Location,
			})
		}
		return nil
	})
	switch {
	case errors.Is(err, ports.ErrNotFound):
		// Updates for orders this process does not hold are skipped.
	case err != nil:
		f.logger.Warn("kafka feed update rejected",
			slog.String("order.id", update.OrderID), slog.String("error", err.Error()))
	}
}

var _ ports.Feed = (*Feed)(nil)
