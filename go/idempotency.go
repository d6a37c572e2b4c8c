package orderpulseserver

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/http/mapper"
)

type normalizedOrderPayload struct {
	ID                string                   `json:"id"`
	CustomerName      string                   `json:"customerName"`
	CustomerEmail     string                   `json:"customerEmail,omitempty"`
	Status            string                   `json:"status,omitempty"`
	Items             []mapper.LineItem        `json:"items"`
	Total             float64                  `json:"total"`
	CreatedAt         string                   `json:"createdAt,omitempty"`
	EstimatedDelivery string                   `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string                   `json:"trackingNumber,omitempty"`
	ShippingAddress   string                   `json:"shippingAddress,omitempty"`
	PaymentMethod     string                   `json:"paymentMethod,omitempty"`
	Events            []normalizedEventPayload `json:"events,omitempty"`
}

type normalizedEventPayload struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"status"`
	Description string `json:"description,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	Location    string `json:"location,omitempty"`
}

// fingerprintOrderPayload builds a deterministic hash of the order submission
// (excluding the idempotency key) so retries can be told apart from key reuse.
// Timestamps the client omitted stay empty rather than being filled in, which
// keeps a retried request hashing to the same value.
func fingerprintOrderPayload(payload mapper.Order) (string, error) {
	normalized := normalizedOrderPayload{
		ID:              payload.ID,
		CustomerName:    payload.CustomerName,
		CustomerEmail:   payload.CustomerEmail,
		Status:          payload.Status,
		Items:           payload.Items,
		Total:           payload.Total,
		TrackingNumber:  payload.TrackingNumber,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethod:   payload.PaymentMethod,
	}
	if !payload.CreatedAt.IsZero() {
		normalized.CreatedAt = payload.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if payload.EstimatedDelivery != nil {
		normalized.EstimatedDelivery = payload.EstimatedDelivery.UTC().Format(time.RFC3339Nano)
	}
	for _, event := range payload.Events {
		entry := normalizedEventPayload{
			ID:          event.ID,
			Label:       event.Label,
			Description: event.Description,
			Location:    event.Location,
		}
		if !event.Timestamp.IsZero() {
			entry.Timestamp = event.Timestamp.UTC().Format(time.RFC3339Nano)
		}
		normalized.Events = append(normalized.Events, entry)
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
