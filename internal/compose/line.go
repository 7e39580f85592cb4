package compose

import (
	"ChartPulse/internal/anim"
	"ChartPulse/internal/draw"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// edgeFadeWidth is the destination-out band at the plot's left edge that
// fades data as it scrolls toward the axis.
const edgeFadeWidth = 40.0

// dimFromFade is how strongly the crosshair proximity fade recedes the live
// dot while scrubbing.
const dimFromFade = 0.6

// RenderLine composes one frame of the single-series chart. The stage order
// is a correctness contract: each layer must occlude the previous ones, and
// particles must land before the edge fade so they too fade at the scroll
// edge. Reordering any two stages changes the composited image.
func RenderLine(s render.Surface, prim Primitives, ly render.Layout, pal *theme.Palette, fr *LineFrame, st *State) {
	dx, dy, shaken := st.Shake.Step(fr.DT)
	if shaken {
		defer s.Push(render.LayerOpts{OffsetX: dx, OffsetY: dy}).Pop()
	}

	// 1. Reference line.
	if fr.Reference != nil && fr.Reveal > 0.01 {
		prim.ReferenceLine(s, ly, pal, *fr.Reference, fr.Reveal)
	}

	// 2. Grid, with the axis in stage 4 synced to the same ramp.
	gridAlpha := anim.RampSmoothstep(fr.Reveal, 0.15, 0.7)
	if fr.ShowGrid {
		prim.Grid(s, ly, pal, &st.Grid, gridAlpha, fr.DT)
	}

	// 2b. Order book behind the line.
	if fr.Depth != nil && fr.Reveal > 0.01 {
		prim.OrderBook(s, ly, pal, fr.Depth, &st.OrderBook, fr.Reveal)
	}

	// 2c. Overlay bars draw behind the line, unclipped.
	if fr.Bars != nil && fr.Bars.Placement == BarPlacementOverlay {
		renderBarLayer(s, ly, pal, fr.Bars,
			anim.RampSmoothstep(fr.Reveal, 0.1, 0.6), fr.Reveal, fr.Scrub, fr.scrubX())
	}

	// 3. Price line; its realized pixel points anchor every later layer.
	var pts []render.Point
	if fr.Reveal > 0.01 {
		pts = prim.PriceLine(s, ly, pal, fr.Points, draw.LineOptions{
			Alpha:  1,
			Reveal: fr.Reveal,
			Fill:   fr.Fill,
			ScrubX: fr.scrubX(),
		})
	}

	// 4. Time axis.
	prim.TimeAxis(s, ly, pal, &st.TimeAxis, gridAlpha, fr.DT)

	var live render.Point
	haveLive := len(pts) > 0
	if haveLive {
		live = pts[len(pts)-1]
	}

	// 5. Live dot.
	if haveLive && fr.Reveal > 0.3 {
		dotAlpha := (fr.Reveal - 0.3) / 0.7
		if fr.Hover != nil {
			dotAlpha *= 1 - dimFromFade*proximityFade(live.X, fr.Hover.X, fr.Scrub, ly.Plot.W)
		}
		if fr.ShowPulse && fr.Reveal > 0.6 && fr.Pause < 0.5 {
			prim.PulsingDot(s, pal, live, &st.Pulse, dotAlpha, fr.DT)
		} else {
			prim.Dot(s, pal, live, dotAlpha)
		}
	}

	// 5b. Momentum arrows fade out while paused.
	if haveLive && fr.Momentum != nil {
		arrowAlpha := anim.RampSmoothstep(fr.Reveal, 0.6, 1) * (1 - fr.Pause)
		prim.MomentumArrows(s, ly, pal, live, fr.Momentum.Direction, arrowAlpha)
	}

	// 6. Particles; a non-zero burst re-arms the impact shake.
	if haveLive && fr.Momentum != nil && fr.Reveal > 0.9 {
		burst := prim.Particles(s, ly, pal, &st.Particles, live, fr.Momentum.Swing, fr.DT)
		st.Shake.Trigger(fr.Momentum.Swing, burst)
	}

	// 6b. Bottom-strip bars draw over the line, clipped.
	if fr.Bars != nil && fr.Bars.Placement == BarPlacementBottom {
		renderBarLayer(s, ly, pal, fr.Bars,
			anim.RampSmoothstep(fr.Reveal, 0.15, 0.7), fr.Reveal, fr.Scrub, fr.scrubX())
	}

	// 7. Left-edge erase, applied unconditionally every frame.
	s.EraseHorizontal(render.Rect{X: ly.Plot.X, Y: ly.Plot.Y, W: edgeFadeWidth, H: ly.Plot.H})

	// 8. Crosshair.
	if fr.Hover != nil && haveLive {
		if a := proximityFade(live.X, fr.Hover.X, fr.Scrub, ly.Plot.W); a > 0.01 {
			prim.Crosshair(s, ly, pal, fr.Hover, false, a)
		}
	}
}
