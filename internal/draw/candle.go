package draw

import (
	"math"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const candleGap = 2 // pixels between neighboring bodies

// Candles draws OHLC bodies and wicks for one bucket width. ohlcScale in
// [0,1] collapses open/high/low toward the close, so the reveal can grow the
// bodies out of flat lines; 1 draws true OHLC geometry.
func (Renderer) Candles(s render.Surface, ly render.Layout, pal *theme.Palette, cs []model.Candle, widthMs int64, alpha, ohlcScale float64) {
	if alpha <= 0.01 || len(cs) == 0 || widthMs <= 0 {
		return
	}
	for _, c := range cs {
		centerX := ly.ToX(c.Time + widthMs/2)
		w := ly.ToX(c.Time+widthMs) - ly.ToX(c.Time) - candleGap
		if w < 1 {
			w = 1
		}
		if centerX+w/2 < ly.Plot.X || centerX-w/2 > ly.Plot.Right() {
			continue
		}

		open := anim.Lerp(c.Close, c.Open, ohlcScale)
		high := anim.Lerp(c.Close, c.High, ohlcScale)
		low := anim.Lerp(c.Close, c.Low, ohlcScale)

		col := pal.Up
		if c.Close < c.Open {
			col = pal.Down
		}
		col = theme.WithAlpha(col, alpha)

		// Wick first so the body paints over its middle.
		yHigh, yLow := ly.ToY(high), ly.ToY(low)
		if yLow-yHigh >= 1 {
			s.FillRect(render.Rect{X: centerX - 0.5, Y: yHigh, W: 1, H: yLow - yHigh}, col)
		}

		yOpen, yClose := ly.ToY(open), ly.ToY(c.Close)
		top := math.Min(yOpen, yClose)
		h := math.Abs(yOpen - yClose)
		if h < 1 {
			h = 1 // flat candle still shows as a tick
		}
		s.FillRect(render.Rect{X: centerX - w/2, Y: top, W: w, H: h}, col)
	}
}
