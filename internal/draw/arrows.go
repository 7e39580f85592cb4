package draw

import (
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// MomentumArrows draws stacked chevrons next to the live point, pointing in
// the direction of the detected momentum (+1 up, -1 down). direction 0 draws
// nothing.
func (Renderer) MomentumArrows(s render.Surface, ly render.Layout, pal *theme.Palette, at render.Point, direction int, alpha float64) {
	if alpha <= 0.01 || direction == 0 {
		return
	}
	col := pal.Up
	dy := -1.0
	if direction < 0 {
		col = pal.Down
		dy = 1
	}

	const size = 5.0
	x := at.X + 10
	if x+size > ly.Plot.Right() {
		x = at.X - 10 - size
	}
	for i := 0; i < 3; i++ {
		a := alpha * (1 - float64(i)*0.3)
		if a <= 0.01 {
			break
		}
		y := at.Y + dy*float64(i)*7
		tip := render.Point{X: x + size/2, Y: y + dy*size}
		s.FillPath([]render.Point{
			{X: x, Y: y},
			tip,
			{X: x + size, Y: y},
		}, theme.WithAlpha(col, a))
	}
}
