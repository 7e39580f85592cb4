package draw

import (
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// EmptyState draws the no-data placeholder: a dashed baseline through the
// plot middle and a muted message.
func (Renderer) EmptyState(s render.Surface, ly render.Layout, pal *theme.Palette, alpha float64) {
	if alpha <= 0.01 {
		return
	}
	midY := ly.Plot.Y + ly.Plot.H/2
	s.StrokeDashed(
		render.Point{X: ly.Plot.X, Y: midY},
		render.Point{X: ly.Plot.Right(), Y: midY},
		1, []float64{3, 5}, theme.WithAlpha(pal.Neutral, alpha*0.7),
	)
	s.FillText("no data", render.Point{X: ly.Plot.X + ly.Plot.W/2, Y: midY - 12},
		12, render.AlignCenter, theme.WithAlpha(pal.Neutral, alpha))
}
