// Package draw implements the chart's drawing primitives: the rasterization
// routines the frame composers layer on top of each other. Each primitive
// takes the layout, the palette, its data slice and an opacity, and emits
// ops into the surface. Primitives that animate across frames own an explicit
// state struct; the caller keeps it alive and the composer only forwards it.
package draw

// GridState is the grid's cross-frame animation phase (staggered line
// fade-in on first reveal).
type GridState struct {
	Phase float64 // 0..1, advances with dt
}

// TimeAxisState carries the time axis label fade phase and the last label
// step, so labels do not flicker when the window shifts.
type TimeAxisState struct {
	Phase  float64
	StepMs int64
}

// PulseState is the live dot's pulse phase in radians.
type PulseState struct {
	Phase float64
}

// Particle is one pooled particle. Inactive particles have Life <= 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Size   float64
}

// ParticlePool is a fixed-capacity particle pool plus the swing level seen
// on the previous tick, used to detect threshold crossings.
type ParticlePool struct {
	Particles [maxParticles]Particle
	PrevSwing float64
}

const maxParticles = 64

// OrderBookState smooths depth band widths across frames so the book does
// not jitter with every update.
type OrderBookState struct {
	BidWidth float64 // exponentially smoothed pixel widths
	AskWidth float64
}
