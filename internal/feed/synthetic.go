package feed

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Synthetic emits a random-walk price stream for development and demos.
type Synthetic struct {
	Base     float64       // starting price; 100 when zero
	Interval time.Duration // tick spacing; 120ms when zero
	Seed     int64         // deterministic stream when nonzero
}

func (s *Synthetic) Name() string { return "synthetic" }

// Stream starts the walk and returns its tick channel. The channel closes
// when ctx is cancelled.
func (s *Synthetic) Stream(ctx context.Context) (<-chan Tick, error) {
	base := s.Base
	if base == 0 {
		base = 100
	}
	interval := s.Interval
	if interval == 0 {
		interval = 120 * time.Millisecond
	}
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ch := make(chan Tick, 16)
	go func() {
		defer close(ch)
		rnd := rand.New(rand.NewSource(seed))
		price := base
		phase := 0.0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				phase += 0.05
				// Slow sinusoid plus noise keeps the chart moving without
				// drifting out of frame.
				price += base*0.002*math.Sin(phase) + (rnd.Float64()-0.5)*base*0.004
				if price < base*0.5 {
					price = base * 0.5
				}
				select {
				case ch <- Tick{Time: now.UnixMilli(), Price: price, Qty: 0.1 + rnd.Float64()}:
				default:
				}
			}
		}
	}()
	return ch, nil
}
