package feed

import "context"

// Tick is a single trade observation from a feed.
type Tick struct {
	Time  int64 // unix millis
	Price float64
	Qty   float64
}

// Source defines the interface for streaming market data.
type Source interface {
	Stream(ctx context.Context) (<-chan Tick, error)
	Name() string
}
