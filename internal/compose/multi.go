package compose

import (
	"image/color"
	"math"

	"ChartPulse/internal/anim"
	"ChartPulse/internal/draw"
	"ChartPulse/internal/render"
	"ChartPulse/internal/theme"
)

// RenderMulti composes one frame of the multi-series overlay: the
// single-series skeleton with per-series visibility, no fill, no momentum
// decorations. While reveal is below 1, every series after the first fades
// by min(1, reveal*2) so N overlapping strokes do not read brighter than the
// single reference stroke of the loading placeholder.
func RenderMulti(s render.Surface, prim Primitives, ly render.Layout, pal *theme.Palette, fr *MultiFrame, st *State) {
	dx, dy, shaken := st.Shake.Step(fr.DT)
	if shaken {
		defer s.Push(render.LayerOpts{OffsetX: dx, OffsetY: dy}).Pop()
	}

	gridAlpha := anim.RampSmoothstep(fr.Reveal, 0.15, 0.7)
	if fr.ShowGrid {
		prim.Grid(s, ly, pal, &st.Grid, gridAlpha, fr.DT)
	}

	// Series strokes. The rightmost live point among the visible series
	// anchors the shared crosshair fade.
	type endpoint struct {
		at     render.Point
		alpha  float64
		series int
	}
	var (
		ends      []endpoint
		rightmost render.Point
		haveLive  bool
	)
	secondary := math.Min(1, fr.Reveal*2)
	for i := range fr.Series {
		sf := &fr.Series[i]
		if sf.Alpha <= 0.01 {
			continue
		}
		a := sf.Alpha
		if i > 0 && fr.Reveal < 1 {
			a *= secondary
		}
		pts := prim.PriceLine(s, ly, pal, sf.Points, draw.LineOptions{
			Alpha:  a,
			Reveal: fr.Reveal,
			Color:  sf.Color,
			ScrubX: fr.scrubX(),
		})
		if len(pts) == 0 {
			continue
		}
		end := pts[len(pts)-1]
		ends = append(ends, endpoint{at: end, alpha: a, series: i})
		if !haveLive || end.X > rightmost.X {
			rightmost = end
			haveLive = true
		}
	}

	prim.TimeAxis(s, ly, pal, &st.TimeAxis, gridAlpha, fr.DT)

	// Endpoint dots and labels per visible series.
	if fr.Reveal > 0.3 {
		dotAlpha := (fr.Reveal - 0.3) / 0.7
		pulseDT := fr.DT
		for _, end := range ends {
			sf := &fr.Series[end.series]
			a := dotAlpha * end.alpha
			if sf.Alpha > 0.5 {
				// The pulse phase is shared; only the first pulsing dot
				// advances it this tick.
				prim.PulsingDot(s, pal, end.at, &st.Pulse, a, pulseDT)
				pulseDT = 0
			} else {
				prim.SimpleDot(s, pal, end.at, a)
			}
			if fr.ShowLabels && sf.Label != "" {
				col := sf.Color
				if col == (color.NRGBA{}) {
					col = pal.Line
				}
				s.FillText(sf.Label,
					render.Point{X: end.at.X + 8, Y: end.at.Y + 4},
					11, render.AlignLeft, theme.WithAlpha(col, a))
			}
		}
	}

	s.EraseHorizontal(render.Rect{X: ly.Plot.X, Y: ly.Plot.Y, W: edgeFadeWidth, H: ly.Plot.H})

	if fr.Hover != nil && haveLive {
		if a := proximityFade(rightmost.X, fr.Hover.X, fr.Scrub, ly.Plot.W); a > 0.01 {
			prim.Crosshair(s, ly, pal, fr.Hover, false, a)
		}
	}
}
