// Package compose is the frame-composition engine: for every tick of the
// host animation loop it decides which visual layers are active, at what
// opacity, in what order, and with what interpolated geometry, then emits the
// drawing calls in painter's order. It owns no timeline; the caller hands it
// the progress scalars for the current tick and a frame delta, and identical
// inputs always produce identical output.
package compose

import (
	"image/color"

	"ChartPulse/internal/draw"
	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// Primitives is the set of drawing-primitive call contracts the composers
// orchestrate. The production implementation is draw.Renderer; tests swap in
// a recording fake. PriceLine must return the realized pixel points of the
// series (the live-point anchor for later layers); Particles must return the
// burst intensity, 0 meaning no burst this tick.
type Primitives interface {
	ReferenceLine(s render.Surface, ly render.Layout, pal *theme.Palette, value, alpha float64)
	DashedValueLine(s render.Surface, ly render.Layout, c color.NRGBA, value, alpha float64)
	Grid(s render.Surface, ly render.Layout, pal *theme.Palette, st *draw.GridState, alpha, dt float64)
	TimeAxis(s render.Surface, ly render.Layout, pal *theme.Palette, st *draw.TimeAxisState, alpha, dt float64)
	OrderBook(s render.Surface, ly render.Layout, pal *theme.Palette, depth *model.Depth, st *draw.OrderBookState, alpha float64)
	PriceLine(s render.Surface, ly render.Layout, pal *theme.Palette, pts []model.Point, opts draw.LineOptions) []render.Point
	Candles(s render.Surface, ly render.Layout, pal *theme.Palette, cs []model.Candle, widthMs int64, alpha, ohlcScale float64)
	Dot(s render.Surface, pal *theme.Palette, at render.Point, alpha float64)
	SimpleDot(s render.Surface, pal *theme.Palette, at render.Point, alpha float64)
	PulsingDot(s render.Surface, pal *theme.Palette, at render.Point, st *draw.PulseState, alpha, dt float64)
	MomentumArrows(s render.Surface, ly render.Layout, pal *theme.Palette, at render.Point, direction int, alpha float64)
	Particles(s render.Surface, ly render.Layout, pal *theme.Palette, pool *draw.ParticlePool, at render.Point, swing, dt float64) float64
	Crosshair(s render.Surface, ly render.Layout, pal *theme.Palette, hv *model.Hover, candleMode bool, alpha float64)
	EmptyState(s render.Surface, ly render.Layout, pal *theme.Palette, alpha float64)
}
