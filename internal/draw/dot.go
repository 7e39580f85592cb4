package draw

import (
	"math"

	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const (
	dotRadius   = 3.5
	pulseMaxR   = 12
	pulsePeriod = 1.6 // seconds per pulse cycle
)

// Dot draws the plain live-point marker.
func (Renderer) Dot(s render.Surface, pal *theme.Palette, at render.Point, alpha float64) {
	if alpha <= 0.01 {
		return
	}
	s.FillCircle(at, dotRadius, theme.WithAlpha(pal.Line, alpha))
}

// SimpleDot is the small endpoint marker used by the multi-series view.
func (Renderer) SimpleDot(s render.Surface, pal *theme.Palette, at render.Point, alpha float64) {
	if alpha <= 0.01 {
		return
	}
	s.FillCircle(at, 2.5, theme.WithAlpha(pal.Line, alpha))
}

// PulsingDot draws the live-point marker with an expanding ring. The pulse
// phase lives in st and advances by dt milliseconds.
func (Renderer) PulsingDot(s render.Surface, pal *theme.Palette, at render.Point, st *PulseState, alpha, dt float64) {
	if alpha <= 0.01 {
		return
	}
	st.Phase = math.Mod(st.Phase+dt/1000/pulsePeriod, 1)

	ringR := dotRadius + st.Phase*(pulseMaxR-dotRadius)
	ringA := alpha * (1 - st.Phase) * 0.6
	if ringA > 0.01 {
		s.StrokeCircle(at, ringR, 1.5, theme.WithAlpha(pal.Line, ringA))
	}
	s.FillCircle(at, dotRadius, theme.WithAlpha(pal.Line, alpha))
}
