package draw

import (
	"time"

	"github.com/dustin/go-humanize"

	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

const tooltipFontSize = 11

// Crosshair draws the hover indicator: a vertical line at the hover x plus a
// value/time tooltip. candleMode switches to the candle variant, which adds a
// horizontal line at the hovered value for reading OHLC levels.
func (Renderer) Crosshair(s render.Surface, ly render.Layout, pal *theme.Palette, hv *model.Hover, candleMode bool, alpha float64) {
	if alpha <= 0.01 || hv == nil {
		return
	}
	if hv.X < ly.Plot.X || hv.X > ly.Plot.Right() {
		return
	}
	lineCol := theme.WithAlpha(pal.Crosshair, alpha*0.8)
	s.StrokeDashed(
		render.Point{X: hv.X, Y: ly.Plot.Y},
		render.Point{X: hv.X, Y: ly.Plot.Bottom()},
		1, []float64{3, 3}, lineCol,
	)
	if candleMode {
		y := ly.ToY(hv.Value)
		if y >= ly.Plot.Y && y <= ly.Plot.Bottom() {
			s.StrokeDashed(
				render.Point{X: ly.Plot.X, Y: y},
				render.Point{X: ly.Plot.Right(), Y: y},
				1, []float64{3, 3}, lineCol,
			)
		}
	}

	price := humanize.CommafWithDigits(hv.Value, 2)
	stamp := time.UnixMilli(hv.Time).Format("15:04:05")
	w := s.TextWidth(price, tooltipFontSize)
	if tw := s.TextWidth(stamp, tooltipFontSize); tw > w {
		w = tw
	}

	const pad = 6
	boxW := w + pad*2
	boxH := tooltipFontSize*2 + pad*2.5
	boxX := hv.X + 10
	if boxX+boxW > ly.Plot.Right() {
		boxX = hv.X - 10 - boxW
	}
	boxY := ly.Plot.Y + 8

	s.FillRoundedRect(render.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, 4,
		theme.WithAlpha(pal.TooltipBG, alpha))
	textCol := theme.WithAlpha(pal.TooltipText, alpha)
	s.FillText(price, render.Point{X: boxX + pad, Y: boxY + pad + tooltipFontSize}, tooltipFontSize, render.AlignLeft, textCol)
	s.FillText(stamp, render.Point{X: boxX + pad, Y: boxY + pad + tooltipFontSize*2 + 3}, tooltipFontSize, render.AlignLeft,
		theme.WithAlpha(pal.GridLabel, alpha))
}
