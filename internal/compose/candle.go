package compose

import (
	"math"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/draw"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// fullLine is the threshold past which the chart counts as fully in line
// identity: the candle layers skip and the line layer owns the close dash.
const fullLine = 0.999

// RenderCandles composes one frame of the candlestick chart with its two
// morph axes: the user-driven candle↔line identity morph and the
// reveal-driven loading morph, blended as lp = max(lineMode, revealLine).
// Raising (1-reveal) to the 3rd power when the resting identity is
// candlesticks makes the loading line fade much faster, so candles dominate
// early in the reveal instead of transiently reading as a line chart.
func RenderCandles(s render.Surface, prim Primitives, ly render.Layout, pal *theme.Palette, fr *CandleFrame, st *State) {
	dx, dy, shaken := st.Shake.Step(fr.DT)
	if shaken {
		defer s.Push(render.LayerOpts{OffsetX: dx, OffsetY: dy}).Pop()
	}

	exp := 3.0
	if fr.LineIdentity {
		exp = 1
	}
	revealLine := math.Pow(1-anim.Clamp01(fr.Reveal), exp)
	lp := math.Max(anim.Clamp01(fr.LineMode), revealLine)

	// Color shifts to accent only as the user-driven morph takes over, not
	// the reveal-driven one. Clamped: near-zero lp would otherwise let the
	// ratio spike above 1.
	colorBlend := 0.0
	if lp > 0.001 {
		colorBlend = anim.Clamp01(fr.LineMode / lp)
	}

	gridAlpha := anim.RampSmoothstep(fr.Reveal, 0.15, 0.7)
	if fr.ShowGrid {
		prim.Grid(s, ly, pal, &st.Grid, gridAlpha, fr.DT)
	}

	// Close-price dashed reference, cross-faded between the candle-colored
	// and accent variants. Fully in line mode the line layer renders its
	// own dash instead.
	if len(fr.Candles) > 0 && fr.Reveal > 0.01 && lp < fullLine {
		last := fr.Candles[len(fr.Candles)-1]
		closeCol := pal.Up
		if last.Close < last.Open {
			closeCol = pal.Down
		}
		prim.DashedValueLine(s, ly, closeCol, last.Close, (1-lp)*fr.Reveal)
		prim.DashedValueLine(s, ly, pal.Accent, last.Close, lp*fr.Reveal)
	}

	// Candle bodies grow out of flat close lines while their alpha rises;
	// shape growth and alpha growth stay perceptually synchronized.
	candleAlpha := fr.Reveal * (1 - lp)
	if candleAlpha > 0.01 {
		ohlcScale := anim.Smoothstep(fr.Reveal)
		if fr.MorphT >= 0 && len(fr.OldCandles) > 0 {
			// Width transition: cross-dissolve old and new widths instead
			// of animating width, avoiding fractional-pixel distortion.
			morph := anim.Clamp01(fr.MorphT)
			prim.Candles(s, ly, pal, fr.OldCandles, fr.OldBucketMs, (1-morph)*candleAlpha, ohlcScale)
			prim.Candles(s, ly, pal, fr.Candles, fr.BucketMs, morph*candleAlpha, ohlcScale)
		} else {
			prim.Candles(s, ly, pal, fr.Candles, fr.BucketMs, candleAlpha, ohlcScale)
		}
	}

	// Morph line: grey while the reveal drives it, accent as the user morph
	// takes over.
	var pts []render.Point
	if lp > 0.01 {
		pts = prim.PriceLine(s, ly, pal, fr.Points, draw.LineOptions{
			Alpha:     lp,
			Reveal:    1,
			Color:     theme.Blend(pal.Neutral, pal.Accent, colorBlend),
			ScrubX:    fr.scrubX(),
			CloseDash: lp >= fullLine,
		})
	}

	prim.TimeAxis(s, ly, pal, &st.TimeAxis, gridAlpha, fr.DT)

	// Live dot from the morph line's realized points.
	if len(pts) > 0 && lp > 0.5 && fr.Reveal > 0.3 {
		live := pts[len(pts)-1]
		dotAlpha := (fr.Reveal - 0.3) / 0.7
		if fr.Hover != nil {
			dotAlpha *= 1 - dimFromFade*proximityFade(live.X, fr.Hover.X, fr.Scrub, ly.Plot.W)
		}
		prim.Dot(s, pal, live, dotAlpha)
	}

	// Empty-state overlay only on an explicit reverse morph to empty.
	if fr.ToEmpty {
		prim.EmptyState(s, ly, pal, (1-fr.Reveal)*(1-fr.LoadingAlpha))
	}

	s.EraseHorizontal(render.Rect{X: ly.Plot.X, Y: ly.Plot.Y, W: edgeFadeWidth, H: ly.Plot.H})

	// Crosshair dispatches to the line or candle variant.
	if fr.Hover != nil && fr.Reveal > 0.7 && fr.Scrub > 0.01 {
		anchor, ok := liveAnchor(pts, fr, ly)
		if ok {
			if a := proximityFade(anchor, fr.Hover.X, fr.Scrub, ly.Plot.W); a > 0.01 {
				prim.Crosshair(s, ly, pal, fr.Hover, fr.LineMode <= 0.5, a)
			}
		}
	}
}

// liveAnchor picks the live-point x for the crosshair fade: the morph line's
// last realized point when present, else the last candle's center.
func liveAnchor(pts []render.Point, fr *CandleFrame, ly render.Layout) (float64, bool) {
	if len(pts) > 0 {
		return pts[len(pts)-1].X, true
	}
	if len(fr.Candles) > 0 {
		last := fr.Candles[len(fr.Candles)-1]
		return ly.ToX(last.Time + fr.BucketMs/2), true
	}
	return 0, false
}
