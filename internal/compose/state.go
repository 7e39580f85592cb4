package compose

import (
	"ChartPulse/internal/anim"
	"ChartPulse/internal/draw"
)

// State is the cross-frame animation state. The caller owns exactly one per
// chart and passes it to the composer every tick; it survives across ticks,
// everything else is rebuilt per frame.
//
// The composer is the sole mutator of Shake. Pulse, Particles, Grid,
// TimeAxis and OrderBook are opaque here: the composer forwards them to the
// drawing module that owns their fields and never touches them itself.
type State struct {
	Shake     anim.ShakeState
	Pulse     draw.PulseState
	Particles draw.ParticlePool
	Grid      draw.GridState
	TimeAxis  draw.TimeAxisState
	OrderBook draw.OrderBookState
}
