package draw

import (
	"math"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const gridLines = 5

// Grid draws the horizontal value grid. Lines fade in staggered top to
// bottom, driven by the grid's own phase so a freshly shown chart settles
// even if the caller holds alpha at 1.
func (Renderer) Grid(s render.Surface, ly render.Layout, pal *theme.Palette, st *GridState, alpha, dt float64) {
	if alpha <= 0.01 {
		return
	}
	st.Phase = anim.Clamp01(st.Phase + dt/600)

	step := ly.Plot.H / float64(gridLines+1)
	for i := 1; i <= gridLines; i++ {
		// Each line occupies its own window of the shared phase.
		w0 := float64(i-1) / float64(gridLines+1)
		la := alpha * anim.RampSmoothstep(st.Phase, w0, w0+0.4)
		if la <= 0.01 {
			continue
		}
		y := ly.Plot.Y + step*float64(i)
		s.FillRect(render.Rect{X: ly.Plot.X, Y: math.Round(y), W: ly.Plot.W, H: 1},
			theme.WithAlpha(pal.Grid, la))
	}
}
