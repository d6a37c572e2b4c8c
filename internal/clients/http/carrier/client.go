package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ShipmentPayload is the handover notice pushed to the carrier when an order
// leaves the distribution center.
type ShipmentPayload struct {
	Reference      string `json:"reference"`
	TrackingNumber string `json:"trackingNumber"`
	Recipient      string `json:"recipient"`
	Address        string `json:"address,omitempty"`
	PieceCount     int    `json:"pieceCount"`
	DispatchedAt   string `json:"dispatchedAt"`
}

type errorBody struct {
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// Client talks to the carrier handover API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NotifyOption configures NotifyShipment behavior.
type NotifyOption func(*notifyOptions)

type notifyOptions struct {
	idempotencyKey string
}

// WithIdempotencyKey sets the Idempotency-Key header for the request.
func WithIdempotencyKey(key string) NotifyOption {
	return func(opts *notifyOptions) {
		opts.idempotencyKey = strings.TrimSpace(key)
	}
}

// NewCarrierClient instantiates the carrier client with sane defaults.
func NewCarrierClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("carrier base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// NotifyShipment pushes the shipment payload to the carrier API.
func (c *Client) NotifyShipment(ctx context.Context, payload ShipmentPayload, optFns ...NotifyOption) error {
	if c == nil || c.httpClient == nil {
		return errors.New("carrier client not configured")
	}
	reference := strings.TrimSpace(payload.Reference)
	if reference == "" {
		return errors.New("shipment reference is required")
	}
	var opts notifyOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode shipment payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/shipments/"+reference, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build carrier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", opts.idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call carrier API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("carrier API idempotency conflict: %s", errorMessage(resp))
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("carrier API error: %s", errorMessage(resp))
	default:
		return fmt.Errorf("carrier API unexpected status: %s", resp.Status)
	}
}

func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return resp.Status
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return resp.Status
	}
	if body.Message != nil {
		if msg := strings.TrimSpace(*body.Message); msg != "" {
			return msg
		}
	}
	if body.Status != nil {
		if msg := strings.TrimSpace(*body.Status); msg != "" {
			return msg
		}
	}
	return resp.Status
}
