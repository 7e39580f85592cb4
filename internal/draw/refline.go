package draw

import (
	"image/color"

	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// ReferenceLine draws a horizontal dashed line at the given value using the
// palette's dash color.
func (r Renderer) ReferenceLine(s render.Surface, ly render.Layout, pal *theme.Palette, value, alpha float64) {
	r.DashedValueLine(s, ly, pal.DashLine, value, alpha)
}

// DashedValueLine draws a horizontal dashed line at value in a caller-chosen
// color. The candle composer uses this for the close-price cross-fade.
func (Renderer) DashedValueLine(s render.Surface, ly render.Layout, c color.NRGBA, value, alpha float64) {
	if alpha <= 0.01 {
		return
	}
	y := ly.ToY(value)
	if y < ly.Plot.Y || y > ly.Plot.Bottom() {
		return
	}
	s.StrokeDashed(
		render.Point{X: ly.Plot.X, Y: y},
		render.Point{X: ly.Plot.Right(), Y: y},
		1, []float64{4, 4}, theme.WithAlpha(c, alpha),
	)
}
