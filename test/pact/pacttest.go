//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

const (
	ProviderName = "order-pulse-api"
	ConsumerName = "order-portal"

	StateOrdersBaseline    = "orders baseline"
	StateOrderExists       = "order ORD-301 exists"
	StateOrderMissing      = "no order with id ORD-404"
	StateOrderShipped      = "order ORD-301 is shipped with a tracking number"
	StateFulfillmentSeeded = "fulfillment board seeded"
)

const (
	ExistingOrderID = "ORD-301"
	MissingOrderID  = "ORD-404"

	ExampleTrackingNumber = "TRK123456789"
)

const (
	exampleCustomer  = "Pact Customer"
	exampleEmail     = "pact.customer@example.com"
	exampleCreatedAt = "2024-06-12T10:00:00Z"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the order portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload provides stable test data for order interactions.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"id":            ExistingOrderID,
		"customerName":  exampleCustomer,
		"customerEmail": exampleEmail,
		"status":        "pending",
		"items": []map[string]any{
			{"id": "1", "name": "Wireless Headphones", "quantity": 1, "price": 99.99},
		},
		"total":     99.99,
		"createdAt": exampleCreatedAt,
	}
}

// ExampleCreatedAt returns the fixed order timestamp used across interactions.
func ExampleCreatedAt() time.Time {
	ts, _ := time.Parse(time.RFC3339, exampleCreatedAt)
	return ts
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
