package compose

import (
	"image/color"

	"ChartPulse/internal/draw"
	"ChartPulse/internal/model"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// fakePrims records primitive calls in order so scenario tests can assert
// which layers a composer activated and with what blend values.
type fakePrims struct {
	calls    []string
	lineOpts []draw.LineOptions
	candles  []candleCall
	crossh   []crosshairCall
	dots     []float64 // alphas of Dot/SimpleDot/PulsingDot calls
	burst    float64   // returned by Particles
}

type candleCall struct {
	widthMs   int64
	alpha     float64
	ohlcScale float64
}

type crosshairCall struct {
	candleMode bool
	alpha      float64
}

func (f *fakePrims) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakePrims) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakePrims) ReferenceLine(render.Surface, render.Layout, *theme.Palette, float64, float64) {
	f.calls = append(f.calls, "reference")
}

func (f *fakePrims) DashedValueLine(_ render.Surface, _ render.Layout, _ color.NRGBA, _, _ float64) {
	f.calls = append(f.calls, "dashline")
}

func (f *fakePrims) Grid(_ render.Surface, _ render.Layout, _ *theme.Palette, _ *draw.GridState, _, _ float64) {
	f.calls = append(f.calls, "grid")
}

func (f *fakePrims) TimeAxis(_ render.Surface, _ render.Layout, _ *theme.Palette, _ *draw.TimeAxisState, alpha, _ float64) {
	if alpha > 0.01 {
		f.calls = append(f.calls, "axis")
	}
}

func (f *fakePrims) OrderBook(_ render.Surface, _ render.Layout, _ *theme.Palette, _ *model.Depth, _ *draw.OrderBookState, _ float64) {
	f.calls = append(f.calls, "orderbook")
}

func (f *fakePrims) PriceLine(_ render.Surface, ly render.Layout, _ *theme.Palette, pts []model.Point, opts draw.LineOptions) []render.Point {
	f.calls = append(f.calls, "line")
	f.lineOpts = append(f.lineOpts, opts)
	out := make([]render.Point, len(pts))
	for i, p := range pts {
		out[i] = render.Point{X: ly.ToX(p.Time), Y: ly.ToY(p.Value)}
	}
	return out
}

func (f *fakePrims) Candles(_ render.Surface, _ render.Layout, _ *theme.Palette, _ []model.Candle, widthMs int64, alpha, ohlcScale float64) {
	f.calls = append(f.calls, "candles")
	f.candles = append(f.candles, candleCall{widthMs: widthMs, alpha: alpha, ohlcScale: ohlcScale})
}

func (f *fakePrims) Dot(_ render.Surface, _ *theme.Palette, _ render.Point, alpha float64) {
	f.calls = append(f.calls, "dot")
	f.dots = append(f.dots, alpha)
}

func (f *fakePrims) SimpleDot(_ render.Surface, _ *theme.Palette, _ render.Point, alpha float64) {
	f.calls = append(f.calls, "simpledot")
	f.dots = append(f.dots, alpha)
}

func (f *fakePrims) PulsingDot(_ render.Surface, _ *theme.Palette, _ render.Point, _ *draw.PulseState, alpha, _ float64) {
	f.calls = append(f.calls, "pulsingdot")
	f.dots = append(f.dots, alpha)
}

func (f *fakePrims) MomentumArrows(_ render.Surface, _ render.Layout, _ *theme.Palette, _ render.Point, _ int, alpha float64) {
	if alpha > 0.01 {
		f.calls = append(f.calls, "arrows")
	}
}

func (f *fakePrims) Particles(_ render.Surface, _ render.Layout, _ *theme.Palette, _ *draw.ParticlePool, _ render.Point, _, _ float64) float64 {
	f.calls = append(f.calls, "particles")
	return f.burst
}

func (f *fakePrims) Crosshair(_ render.Surface, _ render.Layout, _ *theme.Palette, _ *model.Hover, candleMode bool, alpha float64) {
	f.calls = append(f.calls, "crosshair")
	f.crossh = append(f.crossh, crosshairCall{candleMode: candleMode, alpha: alpha})
}

func (f *fakePrims) EmptyState(_ render.Surface, _ render.Layout, _ *theme.Palette, alpha float64) {
	if alpha > 0.01 {
		f.calls = append(f.calls, "empty")
	}
}

// testLayout maps t in [0, 10000] onto x in [50, 550] and v in [0, 100]
// onto y in [320, 20].
func testLayout() render.Layout {
	plot := render.Rect{X: 50, Y: 20, W: 500, H: 300}
	return render.Layout{
		Plot:      plot,
		PadLeft:   50,
		PadRight:  10,
		PadTop:    20,
		PadBottom: 30,
		TimeFrom:  0,
		TimeTo:    10000,
		ToX:       func(t int64) float64 { return plot.X + float64(t)/10000*plot.W },
		ToY:       func(v float64) float64 { return plot.Bottom() - v/100*plot.H },
	}
}

func testPoints() []model.Point {
	return []model.Point{
		{Time: 1000, Value: 40},
		{Time: 9000, Value: 60},
	}
}
