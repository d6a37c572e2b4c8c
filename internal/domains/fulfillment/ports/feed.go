package ports

import "context"

// Feed pushes background updates into the fulfillment collection.
type Feed interface {
	// Start begins delivering updates. It must not block.
	Start(ctx context.Context)
	// Stop halts delivery and returns only once no update is in flight.
	Stop()
}
