package ports

import "context"

// Feed is an autonomous source of order updates. The production
// implementation consumes external carrier events; the demo implementation
// draws from a seeded PRNG on a fixed tick.
type Feed interface {
	// Start begins delivering updates until the context is cancelled or
	// Stop is called. It does not block.
	Start(ctx context.Context)
	// Stop halts the feed and waits for any in-flight delivery to finish,
	// so the collection is guaranteed untouched afterwards.
	Stop()
}
