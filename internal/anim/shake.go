package anim

import (
	"math"
	"math/rand"
)

// shakeFloor is the amplitude below which shake snaps to rest. Offsets this
// small are invisible and keeping the decay running would just churn floats.
const shakeFloor = 0.2

// shakeDecayRate is the per-second multiplier of the exponential decay.
// amplitude *= rate^(dt/1000) halves the amplitude roughly every 60 ms.
const shakeDecayRate = 0.002

// ShakeState is the cross-frame impact-shake amplitude. The caller owns one
// per chart and passes it to the composer every tick; the composer is its
// sole mutator.
type ShakeState struct {
	Amplitude float64

	rnd func() float64 // overridable for tests, defaults to rand.Float64
}

// Step produces this tick's whole-frame pixel offset and advances the decay.
// dt is elapsed milliseconds since the previous tick. The offset is random in
// [-Amplitude, Amplitude] on both axes, and is only produced while the
// amplitude is above the rest floor. Decay runs on every call so that two
// tick sequences covering the same elapsed time end at the same amplitude.
func (s *ShakeState) Step(dt float64) (dx, dy float64, active bool) {
	if s.Amplitude > shakeFloor {
		dx = (s.random()*2 - 1) * s.Amplitude
		dy = (s.random()*2 - 1) * s.Amplitude
		active = true
	}
	if dt > 0 {
		s.Amplitude *= math.Pow(shakeDecayRate, dt/1000)
	}
	if s.Amplitude < shakeFloor {
		s.Amplitude = 0
	}
	return dx, dy, active
}

// Trigger re-arms the shake from a momentum burst. intensity 0 is a no-op.
func (s *ShakeState) Trigger(swing, intensity float64) {
	if intensity <= 0 {
		return
	}
	s.Amplitude = (3 + swing*4) * intensity
}

func (s *ShakeState) random() float64 {
	if s.rnd != nil {
		return s.rnd()
	}
	return rand.Float64()
}
