package draw

import (
	"math"
	"math/rand"

	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const (
	burstThreshold = 0.6 // swing level that fires a burst
	burstCount     = 14
	particleLife   = 0.9 // seconds
	gravity        = 260 // px/s²
	dragPerSecond  = 2.2
)

// Particles advances and draws the burst pool. A burst spawns when the swing
// level crosses the threshold from below; the returned intensity is non-zero
// only on the spawning tick so the caller can re-arm the impact shake.
func (Renderer) Particles(s render.Surface, ly render.Layout, pal *theme.Palette, pool *ParticlePool, at render.Point, swing, dt float64) float64 {
	intensity := 0.0
	if swing >= burstThreshold && pool.PrevSwing < burstThreshold {
		intensity = math.Min(1, swing)
		spawnBurst(pool, at, intensity)
	}
	pool.PrevSwing = swing

	dtSec := dt / 1000
	drag := math.Max(0, 1-dragPerSecond*dtSec)
	for i := range pool.Particles {
		p := &pool.Particles[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= dtSec
		if p.Life <= 0 {
			continue
		}
		p.VY += gravity * dtSec
		p.VX *= drag
		p.X += p.VX * dtSec
		p.Y += p.VY * dtSec

		a := p.Life / particleLife
		if a <= 0.01 {
			continue
		}
		if p.X < ly.Plot.X || p.X > ly.Plot.Right() {
			continue
		}
		s.FillCircle(render.Point{X: p.X, Y: p.Y}, p.Size*a, theme.WithAlpha(pal.Particle, a))
	}
	return intensity
}

func spawnBurst(pool *ParticlePool, at render.Point, intensity float64) {
	spawned := 0
	want := int(float64(burstCount) * intensity)
	if want < 4 {
		want = 4
	}
	for i := range pool.Particles {
		if spawned >= want {
			break
		}
		p := &pool.Particles[i]
		if p.Life > 0 {
			continue
		}
		angle := rand.Float64() * 2 * math.Pi
		speed := (60 + rand.Float64()*120) * (0.5 + intensity/2)
		*p = Particle{
			X:    at.X,
			Y:    at.Y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - 60,
			Life: particleLife * (0.6 + rand.Float64()*0.4),
			Size: 1.5 + rand.Float64()*1.5,
		}
		spawned++
	}
}
